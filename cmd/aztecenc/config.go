package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults holds the subset of options an operator can pin in a YAML
// defaults file instead of repeating flags on every invocation. Flags
// explicitly set on the command line still win over these.
type fileDefaults struct {
	ECPercent     *int  `yaml:"ecPercent"`
	PreferCompact *bool `yaml:"preferCompact"`
	MSBFirst      *bool `yaml:"exportMSBFirst"`
}

func loadFileDefaults(path string) (*fileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileDefaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
