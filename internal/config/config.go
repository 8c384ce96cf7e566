// Package config provides functions for loading, layering and saving recent-activity configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alan/recent-activity/cmd"
	"github.com/alan/recent-activity/internal/readme"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// InputPrefix is prepended to every variable name, matching how GitHub Actions exposes inputs
const InputPrefix = "INPUT_"

var (
	// ErrMissingUsername is returned when no GitHub username is configured
	ErrMissingUsername = errors.New("username is required (set username in the config file or INPUT_GH_USERNAME)")
	// ErrInvalidMaxLines is returned when max_lines is below one
	ErrInvalidMaxLines = errors.New("max_lines must be at least 1")
)

// LoadConfig loads the configuration from the specified file on top of the defaults
func LoadConfig(filename string) (*cmd.Config, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // Config filename is from command-line flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := cmd.Defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads the configuration file, falling back to the defaults when it does not exist
func LoadOrDefault(filename string) (*cmd.Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		return cmd.Defaults(), nil
	}
	return config, err
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(filename string, config *cmd.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnvFile adds the variables of a .env file to the process environment.
// Variables that are already set win. A missing file is ignored unless required.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config with INPUT_* variables. A nil environment reads the process environment.
// Empty variables leave the current value untouched.
func ApplyEnv(config *cmd.Config, environment map[string]string) error {
	opts := env.Options{Prefix: InputPrefix, Environment: environment}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("failed to parse input variables: %w", err)
	}
	return nil
}

// Validate checks that the configuration can drive an update
func Validate(config *cmd.Config) error {
	if config.Username == "" {
		return ErrMissingUsername
	}
	if config.MaxLines < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidMaxLines, config.MaxLines)
	}
	if config.ReadmeFile == "" {
		return errors.New("readme_file is required")
	}
	if _, err := readme.ParseOffset(config.TimezoneOffset); err != nil {
		return err
	}
	return nil
}
