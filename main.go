// main.go
package main

import cmd "github.com/mwiater/gostatcli/cmd/gostatcli"

// main starts the gostatcli application by delegating to the cobra
// root command defined in the gostatcli package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.Execute()
}
