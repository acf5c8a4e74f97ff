package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kagaz/internal/domain"
	"kagaz/internal/port"
)

// MockPromptParser is a mock implementation of port.PromptParser.
type MockPromptParser struct {
	mock.Mock
}

func (m *MockPromptParser) Parse(ctx context.Context, input port.ParseInput) (*domain.DocumentUpdate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentUpdate), args.Error(1)
}
