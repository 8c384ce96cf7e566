// Package commands holds the setup shared by the recent-activity commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alan/recent-activity/cmd"
	"github.com/alan/recent-activity/internal/config"
	"github.com/alan/recent-activity/internal/github"
)

// DefaultEnvFile is loaded when present and no --env-file flag is given
const DefaultEnvFile = ".env"

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile      *string
	EnvFile         string
	EnvFileRequired bool
	LoadConfig      func(string) (*cmd.Config, error)
	GitHubClient    *github.Client
	Context         context.Context
	Config          *cmd.Config
}

// Init loads the configuration: defaults, config file, .env file, then INPUT_* variables
func (bc *BaseCommand) Init(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	bc.Context = ctx

	if err := config.LoadEnvFile(bc.EnvFile, bc.EnvFileRequired); err != nil {
		return err
	}

	cfg, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg, nil); err != nil {
		return err
	}
	bc.Config = cfg

	return nil
}

// InitGitHubClient creates the GitHub client with the token from the environment
func (bc *BaseCommand) InitGitHubClient() error {
	token, err := getGitHubToken()
	if err != nil {
		return err
	}

	client, err := github.NewClient(bc.Context, token, github.WithRateLimitWait(bc.Config.RateLimitWait))
	if err != nil {
		return err
	}
	bc.GitHubClient = client
	return nil
}

// getGitHubToken retrieves and validates the GitHub token
func getGitHubToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", fmt.Errorf("GITHUB_TOKEN environment variable is required")
	}
	return token, nil
}
