package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds optional defaults loaded from
// ~/.config/bucketlens/config.yaml.
type Config struct {
	// DefaultRegion skips region resolution when set.
	DefaultRegion string `yaml:"default_region"`
	// Regions overrides the built-in candidate list for region resolution.
	// Order is significant: resolution stops at the first match.
	Regions []string `yaml:"regions"`
	// Workers bounds concurrent folder probes. Zero means sequential.
	Workers int `yaml:"workers"`
}

// Load reads the config file. Returns zero-value Config if the file doesn't
// exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}

	path := filepath.Join(home, ".config", "bucketlens", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MergeRegion applies the CLI flag override. Flags take precedence over
// config defaults.
func (c *Config) MergeRegion(region string) string {
	if region != "" {
		return region
	}
	return c.DefaultRegion
}

// MergeWorkers applies the CLI flag override.
func (c *Config) MergeWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return c.Workers
}
