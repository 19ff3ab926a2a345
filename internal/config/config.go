// Package config loads analyzer settings from an optional YAML file. Flags
// on the CLI override anything loaded here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which findings are reported and how.
type Config struct {
	DisabledRules []string `yaml:"disabled_rules"`
	MinSeverity   string   `yaml:"min_severity"`
	Format        string   `yaml:"format"`
	NoColor       bool     `yaml:"no_color"`
}

func Default() *Config {
	return &Config{
		Format: "text",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.MinSeverity {
	case "", "high", "medium", "low", "info":
	default:
		return fmt.Errorf("unknown min_severity %q", c.MinSeverity)
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
