package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// CurrentVersion is the list file format version written by Marshal.
const CurrentVersion = "1"

// Config represents ~/.reselect/list.yaml.
type Config struct {
	Version  string    `yaml:"version"`
	Detailed string    `yaml:"detailed,omitempty"`
	Sections []Section `yaml:"sections"`
}

// Section is one titled group of rows.
type Section struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Parse parses list.yaml bytes into a Config and fills defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing list config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	cfg.applyDefaults()
	return yaml.Marshal(cfg)
}

// Load reads and parses the list file at path. A missing file yields
// Default() and no error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding list config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Default returns the built-in sample list.
func Default() Config {
	return Config{
		Version: CurrentVersion,
		Sections: []Section{
			{Title: "Produce", Items: []string{"apple", "butternut squash", "carrot", "date", "elderberry"}},
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	for i := range c.Sections {
		if c.Sections[i].Title == "" {
			c.Sections[i].Title = fmt.Sprintf("Section %d", i+1)
		}
	}
}
