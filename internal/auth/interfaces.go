package auth

import "context"

// RepositoryInterface defines the persistence operations for users
type RepositoryInterface interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}
