package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a workbook configuration override from a YAML file. Fields absent
// from the file keep their built-in defaults. The merged result is validated
// before it is returned.
func Load(path string) (*WorkbookConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse workbook config: %w", err)
	}

	if err := NewValidator().ValidateWorkbook(cfg); err != nil {
		return nil, fmt.Errorf("invalid workbook config %s: %w", path, err)
	}
	return cfg, nil
}
