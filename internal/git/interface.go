package git

// Client defines the interface for Git operations
type Client interface {
	// RepositoryRoot returns the worktree root of the repository containing path
	RepositoryRoot(path string) (string, error)
}
