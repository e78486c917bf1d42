package repository

import (
	"context"

	"github.com/dtroode/sc-task/internal/model"
)

// AuthorRepository defines data access for authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) (*model.Author, error)
	// FindByID returns ErrNotFound when the author does not exist.
	FindByID(ctx context.Context, id string) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	// Delete removes the author row only; association rows pointing at it are kept.
	Delete(ctx context.Context, id string) error
}
