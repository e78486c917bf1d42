package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

// AuthorService defines the use cases for standalone authors.
type AuthorService interface {
	Create(ctx context.Context, author model.Author) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	// Delete removes the author record. Books keep their links to it.
	Delete(ctx context.Context, id string) error
}

type authorService struct {
	authors repository.AuthorRepository
}

// NewAuthorService constructs a new AuthorService.
func NewAuthorService(authors repository.AuthorRepository) AuthorService {
	return &authorService{authors: authors}
}

func (s *authorService) Create(ctx context.Context, author model.Author) (*model.Author, error) {
	if err := validateAuthor(&author); err != nil {
		return nil, err
	}
	author.ID = uuid.NewString()
	stored, err := s.authors.Create(ctx, &author)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return stored, nil
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.authors.List(ctx)
}

func (s *authorService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.authors.Delete(ctx, id)
}
