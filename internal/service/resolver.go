package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

// AuthorResolver links books to authors, creating the authors that do not exist yet.
//
// Links are written one at a time. A failure stops the loop and leaves the
// links already written in place; there is no rollback and no locking, so two
// concurrent calls on the same book interleave freely.
type AuthorResolver struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
}

// NewAuthorResolver constructs an AuthorResolver.
func NewAuthorResolver(books repository.BookRepository, authors repository.AuthorRepository) *AuthorResolver {
	return &AuthorResolver{books: books, authors: authors}
}

// Attach resolves refs in order and adds each author to book, persisting every
// link as it goes. The returned book is book with its author set updated.
func (r *AuthorResolver) Attach(ctx context.Context, book *model.Book, refs []model.AuthorRef) (*model.Book, error) {
	if len(refs) == 0 {
		return book, nil
	}
	if err := validateRefs(refs); err != nil {
		return nil, err
	}

	for _, ref := range refs {
		author, err := r.resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		if err := r.books.LinkAuthor(ctx, book.ID, author.ID); err != nil {
			return nil, fmt.Errorf("link author %s to book %s: %w", author.ID, book.ID, err)
		}
		book.AddAuthor(author.ID)
	}
	return book, nil
}

func (r *AuthorResolver) resolve(ctx context.Context, ref model.AuthorRef) (*model.Author, error) {
	switch ref := ref.(type) {
	case model.ExistingAuthor:
		// A malformed ID cannot name a stored author.
		if _, err := uuid.Parse(ref.ID); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrAuthorNotFound, ref.ID)
		}
		author, err := r.authors.FindByID(ctx, ref.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAuthorNotFound, ref.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("find author %s: %w", ref.ID, err)
		}
		return author, nil
	case model.NewAuthor:
		author := ref.Author
		author.ID = uuid.NewString()
		created, err := r.authors.Create(ctx, &author)
		if err != nil {
			return nil, fmt.Errorf("create author: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("unsupported author reference %T", ref)
	}
}
