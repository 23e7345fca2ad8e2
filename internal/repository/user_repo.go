// internal/repository/user_repo.go
package repository

import (
	"context"

	"usuarios-api/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// ListUsers returns every user, newest first, using the provided DBExecutor.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// CreateUser inserts user and fills in the database-assigned ID and
	// registration timestamp using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
}
