package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// displayConfig holds the presentation options for the board. Values from
// the file are overridden by flags given on the command line. The square
// colors feed both the terminal palette and the SVG output.
type displayConfig struct {
	ASCII       bool   `yaml:"ascii"`
	NoColor     bool   `yaml:"no_color"`
	LightSquare string `yaml:"light_square"`
	DarkSquare  string `yaml:"dark_square"`
}

func defaultConfig() *displayConfig {
	return &displayConfig{
		LightSquare: "#D9C8A9",
		DarkSquare:  "#8A6D4E",
	}
}

// loadConfig reads a YAML display config file. An empty path yields the
// defaults. Keys absent from the file keep their default values.
func loadConfig(path string) (*displayConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
