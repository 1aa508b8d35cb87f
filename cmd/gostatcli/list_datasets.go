// cmd/gostatcli/list_datasets.go
package gostatcli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gostatcli/report"
)

var runListDatasets = func(path string) {
	report.ListDatasets(os.Stdout, resolveConfig(path))
}

// listDatasetsCmd implements 'list datasets', which enumerates the
// configured datasets with their row counts.
var listDatasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List all configured datasets",
	Long:  `The 'datasets' subcommand lists every dataset in the config file with its row count and per-row sizes.`,
	Run: func(cmd *cobra.Command, args []string) {
		runListDatasets(viper.GetString("config"))
	},
}

func init() {
	listCmd.AddCommand(listDatasetsCmd)
}
