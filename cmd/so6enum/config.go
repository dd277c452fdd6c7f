package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig is the YAML run configuration. Flags given on the command
// line override whatever the file says.
type runConfig struct {
	Target      int    `yaml:"target"`
	StoredDepth int    `yaml:"stored_depth"`
	Threads     int    `yaml:"threads"`
	Patterns    string `yaml:"patterns"`
	DataDir     string `yaml:"data_dir"`
}

// loadConfig reads a YAML run configuration. A missing path returns the
// zero config.
func loadConfig(path string) (runConfig, error) {
	var cfg runConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
