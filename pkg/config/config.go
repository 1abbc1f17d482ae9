// Package config loads the configuration of conedit.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable consulted for the configuration
// file when none is given explicitly.
const EnvConfig = "CONEDIT_CONFIG"

// Defaults.
const (
	DefaultPrompt       = "> "
	DefaultHistorySize  = 100
	DefaultScrollMargin = 15
)

// Config is the configuration of conedit.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistorySize int    `yaml:"history_size"`
	// Path of the bbolt database to keep history in. History is not kept
	// across sessions if empty.
	HistoryDB string `yaml:"history_db,omitempty"`
	// Path of the log file. Logs are discarded if empty.
	LogFile         string   `yaml:"log_file,omitempty"`
	CompletionWords []string `yaml:"completion_words,omitempty"`
	ScrollMargin    int      `yaml:"scroll_margin"`
}

// Default returns a new Config with default values.
func Default() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		HistorySize:  DefaultHistorySize,
		ScrollMargin: DefaultScrollMargin,
	}
}

// Path returns the configuration file to use: path if it is not empty,
// otherwise the value of $CONEDIT_CONFIG, which may be empty.
func Path(path string) string {
	if path != "" {
		return path
	}
	return os.Getenv(EnvConfig)
}

// Load reads the configuration from path. An empty path gives the default
// configuration. Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

var (
	errHistorySize  = errors.New("history_size must be positive")
	errScrollMargin = errors.New("scroll_margin must be positive")
)

// Validate checks the values of c.
func (c *Config) Validate() error {
	var errs []error
	if c.HistorySize <= 0 {
		errs = append(errs, errHistorySize)
	}
	if c.ScrollMargin <= 0 {
		errs = append(errs, errScrollMargin)
	}
	return errors.Join(errs...)
}
