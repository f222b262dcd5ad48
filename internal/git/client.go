package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository indicates the path is not inside a git worktree
var ErrNotRepository = errors.New("not inside a git repository")

// RealClient implements Client using go-git
type RealClient struct{}

// NewClient creates a new RealClient
func NewClient() *RealClient {
	return &RealClient{}
}

// RepositoryRoot opens the repository enclosing path, walking up parent
// directories, and returns its worktree root
func (c *RealClient) RepositoryRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, abs)
		}
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// bare repositories have no worktree
		return "", fmt.Errorf("%w: %v", ErrNotRepository, err)
	}
	return wt.Filesystem.Root(), nil
}
