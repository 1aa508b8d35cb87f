// cmd/gostatcli/report.go
package gostatcli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gostatcli/report"
)

var runReport = func(path string) {
	report.Run(os.Stdout, resolveConfig(path))
}

// reportCmd implements 'report', which prints one block per dataset row
// containing the row's data, its median, and its mean.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print median and mean for every dataset row",
	Long:  `The 'report' command iterates every row of every configured dataset, in order, and prints the row's contents followed by its median and mean.`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(viper.GetString("config"))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
