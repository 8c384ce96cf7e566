package commands

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// ValidateGitRepository ensures the directory holding file is inside a git work tree
func ValidateGitRepository(file string) error {
	dir := filepath.Dir(file)
	if !IsGitRepository(dir) {
		return fmt.Errorf("%s is not in a git repository", dir)
	}
	return nil
}

// IsGitRepository checks if dir is inside a git repository
func IsGitRepository(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}
