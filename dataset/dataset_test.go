// dataset/dataset_test.go
// Package: dataset
package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "config.json", `{
		"datasets": [
			{
				"name": "smoke",
				"rows": [[1, 2, 3], [4, 5]]
			}
		],
		"debug": true
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if len(cfg.Datasets) != 1 {
		t.Fatalf("Expected 1 dataset, got %d", len(cfg.Datasets))
	}
	if cfg.Datasets[0].Name != "smoke" {
		t.Errorf("Expected dataset name 'smoke', got %q", cfg.Datasets[0].Name)
	}
	if len(cfg.Datasets[0].Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(cfg.Datasets[0].Rows))
	}
	if !cfg.Debug {
		t.Error("Expected debug to be set")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "config.yaml", `
datasets:
  - name: smoke
    rows:
      - [1, 2, 3]
      - [4, 5]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid YAML failed: %v", err)
	}
	if len(cfg.Datasets) != 1 || cfg.Datasets[0].Name != "smoke" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if got := cfg.Datasets[0].Rows[0][2]; got != 3 {
		t.Errorf("Expected rows[0][2]=3, got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	// Invalid JSON
	path := writeTemp(t, "config.json", `{ "datasets": [`)
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid JSON should have failed, but it didn't")
	}

	// No datasets
	path = writeTemp(t, "config.json", `{ "datasets": [] }`)
	if _, err := Load(path); err == nil {
		t.Error("Load() with no datasets should have failed, but it didn't")
	}

	// Missing name
	path = writeTemp(t, "config.json", `{ "datasets": [ { "rows": [[1]] } ] }`)
	if _, err := Load(path); err == nil {
		t.Error("Load() with unnamed dataset should have failed, but it didn't")
	}

	// File not found
	if _, err := Load("nonexistent.json"); err == nil {
		t.Error("Load() with nonexistent file should have failed, but it didn't")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Datasets) != 1 {
		t.Fatalf("Expected 1 built-in dataset, got %d", len(cfg.Datasets))
	}
	ds := cfg.Datasets[0]
	if ds.Name != "sample" {
		t.Errorf("Expected name 'sample', got %q", ds.Name)
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(ds.Rows))
	}
	wantLens := []int{10, 10, 9}
	for i, row := range ds.Rows {
		if len(row) != wantLens[i] {
			t.Errorf("row %d: expected %d values, got %d", i, wantLens[i], len(row))
		}
	}
}
