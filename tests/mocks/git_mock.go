package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockGitClient mocks the git.Client interface
type MockGitClient struct {
	mock.Mock
}

// RepositoryRoot mocks worktree root discovery
func (m *MockGitClient) RepositoryRoot(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}
