package repository

import (
	"context"

	"github.com/dtroode/sc-task/internal/model"
)

// BookRepository defines data access for books and their author associations.
// Persistence only, no business rules.
type BookRepository interface {
	// Create inserts a new book row. The association set is not written.
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// FindByID returns a book with its author set, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Book, error)

	// List returns every book with its author set, in store order.
	List(ctx context.Context) ([]model.Book, error)

	// LinkAuthor adds authorID to the book's association set. Linking twice is a no-op.
	LinkAuthor(ctx context.Context, bookID, authorID string) error

	// SetFile records the attached file name of a book. Returns ErrNotFound if the book is gone.
	SetFile(ctx context.Context, bookID, filename string) error

	// Delete removes a book and its association rows. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}
