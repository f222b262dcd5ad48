package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSummaryWriter mocks the domain.SummaryWriter interface
type MockSummaryWriter struct {
	mock.Mock
}

// Path mocks the destination path
func (m *MockSummaryWriter) Path() string {
	args := m.Called()
	return args.String(0)
}

// Write mocks writing the manifest
func (m *MockSummaryWriter) Write(ctx context.Context, content []byte) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

// Check mocks the staleness check
func (m *MockSummaryWriter) Check(content []byte) error {
	args := m.Called(content)
	return args.Error(0)
}
