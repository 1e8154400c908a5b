package watcher

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/holdem-watch/internal/dispatch"
)

// MockSink Sink mock
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Deliver(sessionID string, outputs []dispatch.Output) error {
	args := m.Called(sessionID, outputs)
	return args.Error(0)
}

// MockStore 上下文存储 mock
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveContext(ctx context.Context, sessionID string, c *dispatch.Context) error {
	args := m.Called(ctx, sessionID, c)
	return args.Error(0)
}

func (m *MockStore) LoadContext(ctx context.Context, sessionID string) (*dispatch.Context, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Context), args.Error(1)
}

func (m *MockStore) DeleteContext(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
