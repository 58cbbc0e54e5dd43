// Package vcs provides the version-control status collaborator: the set of
// currently modified and untracked file paths, as reported by git.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/siyuan-infoblox/svelte-imports-group/pkg/errors"
)

// RepoRoot resolves the repository root containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveRepoRoot, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ChangedFiles returns the modified and untracked paths of the repository,
// as absolute paths. Deleted files are excluded; a rename contributes its
// new path.
func ChangedFiles(ctx context.Context, repoRoot string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", repoRoot, "status", "--porcelain")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToQueryStatus, err)
	}

	var files []string
	for _, rel := range ParsePorcelain(string(out)) {
		files = append(files, filepath.Join(repoRoot, rel))
	}
	return files, nil
}

// ParsePorcelain extracts the relevant paths from `git status --porcelain`
// output. Lines are `XY path` with an optional `orig -> new` rename form.
func ParsePorcelain(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		path := line[3:]

		// a path deleted in either the index or the worktree has no
		// content to rewrite
		if x == 'D' || y == 'D' {
			continue
		}
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}
		path = strings.Trim(path, `"`)
		if path == "" {
			continue
		}
		files = append(files, path)
	}
	return files
}
