// Package update implements the update command that refreshes the recent activity section of a README.
package update

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/alan/recent-activity/cmd"
	"github.com/alan/recent-activity/internal/commands"
	"github.com/alan/recent-activity/internal/config"
	"github.com/alan/recent-activity/internal/git"
	"github.com/alan/recent-activity/internal/readme"
	"github.com/alan/recent-activity/internal/reconciler"
	"github.com/spf13/cobra"
)

type updateFlags struct {
	dryRun     bool
	noCommit   bool
	username   string
	readmeFile string
	maxLines   int
	envFile    string
}

// NewUpdateCmd creates and returns the update command
func NewUpdateCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	flags := &updateFlags{}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update the README with the latest public GitHub activity",
		Long: fmt.Sprintf(`Update fetches the public events of the configured user, renders the latest
comments, issues and pull requests as a numbered list and writes them between the
%s and %s lines of the README.
The end marker is added after the list when it is missing.

If the README also has a %s line, the time of the update is
written below it, closed by %s.

When the list changed, the README is committed and pushed. Use --dry-run to print
the result instead, or --no-commit to only write the file.

Settings come from the config file, then the .env file, then INPUT_* environment
variables, then flags. GITHUB_TOKEN must be set.`,
			readme.StartMarker, readme.EndMarker, readme.LastUpdateMarker, readme.LastUpdateEndMarker),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runUpdate(cobraCmd.Context(), *globalConfigFile, loadConfig, flags, cobraCmd.OutOrStdout())
		},
	}

	updateCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the updated README without writing or committing")
	updateCmd.Flags().BoolVar(&flags.noCommit, "no-commit", false, "Write the README but skip the git commit and push")
	updateCmd.Flags().StringVarP(&flags.username, "username", "u", "", "GitHub username whose activity is shown")
	updateCmd.Flags().StringVarP(&flags.readmeFile, "readme", "r", "", "Path of the README to update")
	updateCmd.Flags().IntVarP(&flags.maxLines, "max-lines", "n", 0, "Maximum number of activity lines")
	updateCmd.Flags().StringVar(&flags.envFile, "env-file", "", "Load variables from this .env file (default .env when present)")

	return updateCmd
}

func runUpdate(ctx context.Context, configFile string, loadConfig func(string) (*cmd.Config, error), flags *updateFlags, out io.Writer) error {
	bc := &commands.BaseCommand{
		ConfigFile:      &configFile,
		EnvFile:         flags.envFile,
		EnvFileRequired: flags.envFile != "",
		LoadConfig:      loadConfig,
	}
	if bc.EnvFile == "" {
		bc.EnvFile = commands.DefaultEnvFile
	}

	if err := bc.Init(ctx); err != nil {
		return err
	}
	applyFlags(bc.Config, flags)
	if err := config.Validate(bc.Config); err != nil {
		return err
	}
	readmeFile, err := filepath.Abs(bc.Config.ReadmeFile)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", bc.Config.ReadmeFile, err)
	}
	bc.Config.ReadmeFile = readmeFile

	opts := reconciler.Options{DryRun: flags.dryRun, NoCommit: flags.noCommit}
	if !opts.DryRun && !opts.NoCommit {
		if err := commands.ValidateGitRepository(bc.Config.ReadmeFile); err != nil {
			return err
		}
	}

	if err := bc.InitGitHubClient(); err != nil {
		return err
	}

	committer := newCommitter(bc.Config)
	return executeUpdate(bc.Context, bc.Config, bc.GitHubClient, committer, opts, out)
}

// executeUpdate runs one reconciliation and prints its outcome
func executeUpdate(ctx context.Context, config *cmd.Config, fetcher reconciler.Fetcher, committer reconciler.Committer, opts reconciler.Options, out io.Writer) error {
	slog.Info("Updating recent activity", "user", config.Username, "file", config.ReadmeFile, "dry_run", opts.DryRun)

	result, err := reconciler.NewReconciler(fetcher, committer, config, slog.Default()).Run(ctx, opts)
	if err != nil {
		return err
	}

	commands.DisplayResult(out, result)
	return nil
}

// applyFlags overrides the layered configuration with explicitly set flags
func applyFlags(config *cmd.Config, flags *updateFlags) {
	if flags.username != "" {
		config.Username = flags.username
	}
	if flags.readmeFile != "" {
		config.ReadmeFile = flags.readmeFile
	}
	if flags.maxLines != 0 {
		config.MaxLines = flags.maxLines
	}
}

// newCommitter commits from the directory that holds the README
func newCommitter(config *cmd.Config) *git.Committer {
	return git.NewCommitter(filepath.Dir(config.ReadmeFile), config.Committer.Name, config.Committer.Email, nil)
}
