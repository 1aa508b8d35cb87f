// cmd/gostatcli/root.go
package gostatcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile stores the config file path bound to the persistent
// --config flag.
var cfgFile string

// rootCmd is the base Cobra command for the gostatcli application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "gostatcli",
	Short: "Descriptive statistics for configured datasets",
	Long:  `gostatcli computes median, mean, and extended descriptive statistics over datasets defined in a config file, or over a built-in sample dataset when no config is present.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.json", "config file (JSON or YAML)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
