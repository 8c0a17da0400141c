package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Publisher is a mock implementation of queue.Publisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, messageID string, body []byte) error {
	args := m.Called(ctx, messageID, body)
	return args.Error(0)
}
