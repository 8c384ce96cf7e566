// Package config implements the config command for initializing and updating recent-activity configuration.
package config

import (
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	"github.com/alan/recent-activity/cmd"
	"github.com/spf13/cobra"
)

var (
	sshRemoteRegex   = regexp.MustCompile(`git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	httpsRemoteRegex = regexp.MustCompile(`https://(?:[^@/]+@)?github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// configValues are the settings the command can write
type configValues struct {
	username       string
	readmeFile     string
	maxLines       int
	timezoneOffset string
	dateString     string
}

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	values := &configValues{}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Initialize or update the recent-activity.yaml configuration file",
		Long: `Config creates or updates the recent-activity.yaml file.

When run from a git repository, the username defaults to the owner of the
origin remote, which for a profile repository is the GitHub user itself.

Values not given as flags are kept from the existing file or set to defaults.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigWithGitDetection(*globalConfigFile, values, loadConfig, saveConfig)
		},
	}

	configCmd.Flags().StringVarP(&values.username, "username", "u", "", "GitHub username (auto-detected from git if available)")
	configCmd.Flags().StringVarP(&values.readmeFile, "readme", "r", "", "Path of the README to update")
	configCmd.Flags().IntVarP(&values.maxLines, "max-lines", "n", 0, "Maximum number of activity lines")
	configCmd.Flags().StringVar(&values.timezoneOffset, "timezone-offset", "", "Offset used for the last update timestamp, e.g. +05:30")
	configCmd.Flags().StringVar(&values.dateString, "date-string", "", "Layout of the last update timestamp, e.g. DD/MM/YYYY HH:mm:ss")

	return configCmd
}

// runConfigWithGitDetection fills in the username from git before saving
func runConfigWithGitDetection(configFile string, values *configValues, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) error {
	existing, _ := loadOrCreateConfig(configFile, loadConfig)

	if values.username == "" && existing.Username == "" {
		if owner, err := detectRemoteOwner(); err == nil {
			values.username = owner
			slog.Info("Auto-detected username", "username", owner)
		}
	}

	if values.username == "" && existing.Username == "" {
		return fmt.Errorf("username is required (use --username flag or run from a GitHub repository)")
	}

	return runConfig(configFile, values, loadConfig, saveConfig)
}

func runConfig(configFile string, values *configValues, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) error {
	config, isUpdate := loadOrCreateConfig(configFile, loadConfig)

	updateConfigWithProvidedValues(config, values)

	if err := saveConfig(configFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	displayConfigSuccess(configFile, config, isUpdate)
	return nil
}

// displayConfigSuccess shows the configuration success message
func displayConfigSuccess(configFile string, config *cmd.Config, isUpdate bool) {
	action := "initialized"
	if isUpdate {
		action = "updated"
	}
	fmt.Printf("Successfully %s %s with:\n", action, configFile)
	fmt.Printf("  Username: %s\n", config.Username)
	fmt.Printf("  README: %s\n", config.ReadmeFile)
	fmt.Printf("  Max lines: %d\n", config.MaxLines)
	fmt.Printf("  Timestamp: %s (%s)\n", config.DateString, config.TimezoneOffset)
}

// loadOrCreateConfig loads existing config or starts from the defaults
func loadOrCreateConfig(configFile string, loadConfig func(string) (*cmd.Config, error)) (*cmd.Config, bool) {
	if config, err := loadConfig(configFile); err == nil && config != nil {
		return config, true
	}
	return cmd.Defaults(), false
}

// updateConfigWithProvidedValues updates config with any non-empty provided values
func updateConfigWithProvidedValues(config *cmd.Config, values *configValues) {
	if values.username != "" {
		config.Username = values.username
	}
	if values.readmeFile != "" {
		config.ReadmeFile = values.readmeFile
	}
	if values.maxLines > 0 {
		config.MaxLines = values.maxLines
	}
	if values.timezoneOffset != "" {
		config.TimezoneOffset = values.timezoneOffset
	}
	if values.dateString != "" {
		config.DateString = values.dateString
	}
}

// detectRemoteOwner returns the owner of the origin remote
func detectRemoteOwner() (string, error) {
	output, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err != nil {
		return "", fmt.Errorf("failed to read git remote: %w", err)
	}

	owner, _, err := parseRemoteURL(strings.TrimSpace(string(output)))
	return owner, err
}

// parseRemoteURL extracts owner and repo from various GitHub URL formats
func parseRemoteURL(remoteURL string) (string, string, error) {
	if matches := sshRemoteRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	if matches := httpsRemoteRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}
	return "", "", fmt.Errorf("unable to parse GitHub remote URL: %s", remoteURL)
}
