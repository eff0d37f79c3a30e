// Package models defines data structures for configuration and extraction output.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "wto.yaml"
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout    = 10 * time.Second
	DefaultOutputDir  = "."
)

// Config holds runtime configuration for an extraction run.
// Values come from an optional YAML file and are overridden by CLI flags.
type Config struct {
	UserAgent      string        `yaml:"user_agent"`
	Timeout        time.Duration `yaml:"timeout"`
	OutputDir      string        `yaml:"output_dir"`
	HistoryDB      string        `yaml:"history_db"` // empty means next to the binary
	DisableHistory bool          `yaml:"disable_history"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		OutputDir: DefaultOutputDir,
	}
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
// A missing file is only an error when required is true.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}
