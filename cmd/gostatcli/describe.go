// cmd/gostatcli/describe.go
package gostatcli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gostatcli/report"
)

var runDescribe = func(path string) {
	report.Describe(os.Stdout, resolveConfig(path))
}

// describeCmd implements 'describe', which prints extended descriptive
// statistics per dataset row.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print extended statistics for every dataset row",
	Long:  `The 'describe' command prints count, min/max, mean with standard deviation, and the p50/p95 quantiles for every row of every configured dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDescribe(viper.GetString("config"))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
