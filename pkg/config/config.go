// Package config loads and saves the multitimer configuration.
//
// Configuration lives in a YAML file and controls the pomodoro spans,
// the optional session journal path, and the console prompt. A missing
// file falls back to built-in defaults so the binary runs with zero
// setup; flags may override individual values on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
	DefaultPrompt       = "timer> "
)

// Config holds the multitimer application configuration.
type Config struct {
	// WorkMinutes is the work span used by the pomodoro command.
	WorkMinutes int `yaml:"work_minutes"`

	// BreakMinutes is the break span used by the pomodoro command.
	BreakMinutes int `yaml:"break_minutes"`

	// JournalPath is the session journal file. Empty disables capture.
	JournalPath string `yaml:"journal_path,omitempty"`

	// Prompt is the console prompt text.
	Prompt string `yaml:"prompt"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WorkMinutes:  DefaultWorkMinutes,
		BreakMinutes: DefaultBreakMinutes,
		Prompt:       DefaultPrompt,
	}
}

// Load reads the configuration from a YAML file. Keys absent from the
// file keep their default values. Returns Default() when path is empty
// or the file does not exist.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent
// directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validate rejects values the timer registry would refuse at runtime.
func (c Config) validate() error {
	if c.WorkMinutes <= 0 {
		return fmt.Errorf("work_minutes must be positive, got %d", c.WorkMinutes)
	}
	if c.BreakMinutes <= 0 {
		return fmt.Errorf("break_minutes must be positive, got %d", c.BreakMinutes)
	}
	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	return nil
}
