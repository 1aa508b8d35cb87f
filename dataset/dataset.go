// dataset/dataset.go
// Package: dataset
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dataset is one named, ordered collection of numeric rows.
// It is treated as a constant for the lifetime of the process.
type Dataset struct {
	// Name is a user-friendly label for the dataset, for example "sample".
	Name string `json:"name" yaml:"name"`
	// Rows holds the numeric sequences, in report order.
	Rows [][]float64 `json:"rows" yaml:"rows"`
}

// Config contains application settings that drive the CLI behavior.
type Config struct {
	// Datasets is the list of datasets to report on.
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
	// Debug enables a dump of the resolved configuration before reporting.
	Debug bool `json:"debug" yaml:"debug"`
}

// Default returns the built-in sample dataset used when no config file
// is present.
func Default() Config {
	return Config{
		Datasets: []Dataset{
			{
				Name: "sample",
				Rows: [][]float64{
					{1, 4, 8, 5, 10, 6, 5, 2, 5, 10},
					{1, 3, 8, 7, 8, 7, 4, 2, 4, 10},
					{1, 1, 2, 2, 5, 6, 6, 8, 8},
				},
			},
		},
	}
}

// Load reads and parses the configuration file at the given path.
// A .yaml or .yml extension selects YAML; everything else parses as JSON.
// It returns an error if the file cannot be read or parsed, or if no
// datasets are defined in the configuration.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("could not parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("could not parse config JSON: %w", err)
		}
	}
	if len(cfg.Datasets) == 0 {
		return nil, errors.New("config must contain at least one dataset")
	}
	for _, ds := range cfg.Datasets {
		if ds.Name == "" {
			return nil, errors.New("every dataset must have a name")
		}
	}
	return &cfg, nil
}
