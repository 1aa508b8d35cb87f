// cmd/gostatcli/list_commands.go
package gostatcli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(os.Stdout, rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

type commandInfo struct {
	path        string
	description string
}

// collectCommandData walks the command tree and returns a flattened
// slice of path/description pairs, indented by depth.
func collectCommandData(cmd *cobra.Command, parentPath, indent string) []commandInfo {
	path := cmd.Name()
	if parentPath != "" {
		path = parentPath + " " + cmd.Name()
	}

	all := []commandInfo{{path: indent + path, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		all = append(all, collectCommandData(sub, path, indent+"  ")...)
	}
	return all
}

// listAllCommands prints each command path and short description in a
// padded, two-column layout.
func listAllCommands(w io.Writer, root *cobra.Command) {
	data := collectCommandData(root, "", "")

	width := 0
	for _, d := range data {
		if len(d.path) > width {
			width = len(d.path)
		}
	}

	fmt.Fprintln(w, "Commands and Subcommands:")
	for _, d := range data {
		fmt.Fprintf(w, "  %-*s  %s\n", width, d.path, d.description)
	}
}
