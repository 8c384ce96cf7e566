//go:build integration
// +build integration

package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestGitRepo creates a clone of a temporary bare repository
func setupTestGitRepo(t *testing.T) string {
	tmpDir := t.TempDir()
	remote := filepath.Join(tmpDir, "remote.git")
	clone := filepath.Join(tmpDir, "clone")

	cmd := exec.Command("git", "init", "--bare", remote)
	require.NoError(t, cmd.Run(), "failed to init bare repo")

	cmd = exec.Command("git", "clone", remote, clone)
	require.NoError(t, cmd.Run(), "failed to clone repo")

	// Disable GPG signing for test commits
	cmd = exec.Command("git", "config", "commit.gpgsign", "false")
	cmd.Dir = clone
	require.NoError(t, cmd.Run(), "failed to disable gpg signing")

	return clone
}

func TestCommitter_CommitFile_Integration(t *testing.T) {
	repoDir := setupTestGitRepo(t)
	ctx := context.Background()
	c := NewCommitter(repoDir, "", "", nil)

	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "README.md"), []byte("hello\n"), 0644))
	require.NoError(t, c.CommitFile(ctx, "README.md", "Update README"))

	cmd := exec.Command("git", "log", "-1", "--pretty=format:%an|%s", "origin/HEAD")
	cmd.Dir = repoDir
	output, err := cmd.Output()
	if err != nil {
		cmd = exec.Command("git", "log", "-1", "--pretty=format:%an|%s")
		cmd.Dir = repoDir
		output, err = cmd.Output()
	}
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName+"|Update README", strings.TrimSpace(string(output)))

	// A second run without changes commits nothing and still succeeds
	require.NoError(t, c.CommitFile(ctx, "README.md", "Update README"))
}
