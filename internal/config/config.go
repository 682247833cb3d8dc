package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SourceCSV    = "CSV"
	SourceSQLite = "SQLITE"
)

type Config struct {
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
		ShutdownSeconds     int    `yaml:"shutdown_seconds"`
	} `yaml:"server"`
	Data struct {
		Source             string `yaml:"source"`
		Dir                string `yaml:"dir"`
		ProjectionsPath    string `yaml:"projections_path"`
		WinProbabilityPath string `yaml:"win_probability_path"`
		SQLitePath         string `yaml:"sqlite_path"`
	} `yaml:"data"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8501"
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 10
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 30
	}
	if c.Server.ShutdownSeconds == 0 {
		c.Server.ShutdownSeconds = 5
	}
	if c.Data.Source == "" {
		c.Data.Source = SourceCSV
	}
	c.Data.Source = strings.ToUpper(c.Data.Source)
	if c.Data.Dir == "" {
		c.Data.Dir = "simulation_results"
	}
	if c.Data.ProjectionsPath == "" {
		c.Data.ProjectionsPath = "fantasy_projections.csv"
	}
	if c.Data.WinProbabilityPath == "" {
		c.Data.WinProbabilityPath = "win_probability.csv"
	}
	if c.Data.SQLitePath == "" {
		c.Data.SQLitePath = "simulation_results.db"
	}
}

// applyEnv lets the hosting environment override the file: PORT for the
// listen address and DATA_DIR for where the datasets live.
func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}
}

func (c *Config) Validate() error {
	if c.Data.Source != SourceCSV && c.Data.Source != SourceSQLite {
		return fmt.Errorf("invalid data.source '%s': must be '%s' or '%s'", c.Data.Source, SourceCSV, SourceSQLite)
	}
	if c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 || c.Server.ShutdownSeconds < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	return nil
}

// Resolve joins p onto the data directory unless p is absolute.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Data.Dir, p)
}

// LoadConfig reads path, falling back to defaults when the file does not
// exist, then applies environment overrides and validates.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	c.applyDefaults()
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
