// cmd/gostatcli/browse.go
package gostatcli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gostatcli/browse"
)

var startBrowser = browse.StartBrowser

// browseCmd implements 'browse', which starts the interactive dataset
// browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse datasets interactively",
	Long:  `The 'browse' command starts a terminal UI for stepping through datasets and rows and viewing the statistics of each row.`,
	Run: func(cmd *cobra.Command, args []string) {
		startBrowser(viper.GetString("config"))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
