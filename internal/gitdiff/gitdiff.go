package gitdiff

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// gitTimeout bounds every git subprocess invocation.
const gitTimeout = 30 * time.Second

// ChangedFiles returns the repo-relative paths changed since ref, via
// `git diff --name-only <ref>`. A missing git binary, a non-repo directory,
// or a timeout all yield an empty result: the caller degrades to a full
// rebuild rather than failing the run.
func ChangedFiles(repoPath, ref string) []string {
	output, err := runGit(repoPath, []string{"diff", "--name-only", ref})
	if err != nil {
		slog.Debug("gitdiff.unavailable", "err", err)
		return nil
	}
	return ParseNameOnlyOutput(output)
}

// ParseNameOnlyOutput parses the raw output of git diff --name-only.
func ParseNameOnlyOutput(output string) []string {
	var files []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}

// runGit executes a git command and returns stdout.
func runGit(repoPath string, args []string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git not found in PATH")
	}

	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		// git diff exits 1 when differences exist in some modes; the output
		// is still what we want.
		if exitErr, ok := err.(*exec.ExitError); ok {
			slog.Debug("git.exit", "code", exitErr.ExitCode(), "args", args)
			return string(output), nil
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(output), nil
}
