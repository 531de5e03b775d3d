package repository

import (
	"context"

	"geogame/internal/domain"
)

// PostRepository defines the persistence operations for posts.
// Posts are immutable after creation, so there is no update path.
type PostRepository interface {
	// Create adds a new post. Returns ErrDuplicate if the id is taken.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its id.
	GetByID(ctx context.Context, id string) (*domain.Post, error)

	// GetAll retrieves all posts.
	GetAll(ctx context.Context) ([]*domain.Post, error)
}
