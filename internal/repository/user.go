package repository

import (
	"context"

	"geogame/internal/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// Create adds a new user. Returns ErrDuplicate if the userName is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUserName retrieves a user by their unique userName.
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*domain.User, error)
}
