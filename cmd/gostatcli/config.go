// cmd/gostatcli/config.go
package gostatcli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mwiater/gostatcli/dataset"
)

// resolveConfig loads the dataset config from the given path. A missing
// file falls back to the built-in sample dataset so the CLI works with
// zero configuration; any other load failure is reported and the
// process exits.
func resolveConfig(path string) dataset.Config {
	cfg, err := dataset.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return dataset.Default()
	}
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	return *cfg
}
