package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the posfit tool.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Scoring ScoringConfig `yaml:"scoring"`
	Stress  StressConfig  `yaml:"stress"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig points at an optional catalog file replacing the built-in table.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// ScoringConfig holds scoring configuration.
type ScoringConfig struct {
	DefaultScenario int `yaml:"default_scenario"`
}

// StressConfig holds stress test configuration.
type StressConfig struct {
	Samples  int    `yaml:"samples"`
	Bins     int    `yaml:"bins"`
	Scenario int    `yaml:"scenario"`
	Seed     uint64 `yaml:"seed"` // 0 = seed from entropy
}

// RenderConfig holds text chart configuration.
type RenderConfig struct {
	Width int `yaml:"width"` // 0 = derive from terminal width
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"` // "dev" (console) or "prod" (JSON)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			DefaultScenario: 1,
		},
		Stress: StressConfig{
			Samples:  100,
			Bins:     15,
			Scenario: 1,
		},
		Render: RenderConfig{
			Width: 0,
		},
		Logging: LoggingConfig{
			Level: "warn",
			Env:   "dev",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for posfit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "posfit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".posfit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if c.Stress.Samples < 0 {
		return fmt.Errorf("stress.samples must not be negative, got %d", c.Stress.Samples)
	}
	if c.Stress.Bins <= 0 {
		return fmt.Errorf("stress.bins must be positive, got %d", c.Stress.Bins)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("render.width must not be negative, got %d", c.Render.Width)
	}
	switch c.Logging.Env {
	case "dev", "prod":
	default:
		return fmt.Errorf("logging.env must be dev or prod, got %q", c.Logging.Env)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CatalogPath resolves the catalog path against dir when it is relative.
func (c *Config) CatalogPath(dir string) string {
	if c.Catalog.Path == "" || filepath.IsAbs(c.Catalog.Path) {
		return c.Catalog.Path
	}
	return filepath.Join(dir, c.Catalog.Path)
}
