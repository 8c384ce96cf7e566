// Package git commits and pushes a single file with the git CLI.
package git

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Default committer identity
const (
	DefaultUserName  = "readme-bot"
	DefaultUserEmail = "41898282+github-actions[bot]@users.noreply.github.com"
)

// nothingToCommit is printed by git commit when the index matches HEAD
const nothingToCommit = "nothing to commit"

// Runner executes a git command in dir and returns its combined output
type Runner func(ctx context.Context, dir string, args ...string) (string, error)

// ExecRunner runs the git binary found on PATH
func ExecRunner(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

// Committer stages, commits and pushes files
type Committer struct {
	Dir       string
	UserName  string
	UserEmail string
	run       Runner
}

// NewCommitter creates a Committer working in dir. A nil runner uses ExecRunner.
func NewCommitter(dir, userName, userEmail string, run Runner) *Committer {
	if run == nil {
		run = ExecRunner
	}
	if userName == "" {
		userName = DefaultUserName
	}
	if userEmail == "" {
		userEmail = DefaultUserEmail
	}
	return &Committer{
		Dir:       dir,
		UserName:  userName,
		UserEmail: userEmail,
		run:       run,
	}
}

// CommitFile commits path with message and pushes the current branch.
// A commit with nothing to record is not an error.
func (c *Committer) CommitFile(ctx context.Context, path, message string) error {
	steps := [][]string{
		{"config", "user.email", c.UserEmail},
		{"config", "user.name", c.UserName},
		{"add", path},
		{"commit", "-m", message},
		{"push"},
	}

	for _, args := range steps {
		slog.Debug("Running git", "args", args)
		output, err := c.run(ctx, c.Dir, args...)
		if err == nil {
			continue
		}
		if strings.Contains(output, nothingToCommit) {
			slog.Info("Nothing to commit", "file", path)
			continue
		}
		return fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(output))
	}

	slog.Info("Pushed to remote repository", "file", path)
	return nil
}
