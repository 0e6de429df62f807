package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/citycab/taxi-dispatch/internal/auth"
)

// MockAuthRepository is a mock implementation of auth.RepositoryInterface
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreateUser(ctx context.Context, user *auth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthRepository) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}
