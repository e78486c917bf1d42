package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

// BookDetail is a book together with its resolved authors.
type BookDetail struct {
	Book    model.Book     `json:"book"`
	Authors []model.Author `json:"authors"`
}

// BookService defines the use cases for books.
type BookService interface {
	// Create stores a new book, then attaches refs through the AuthorResolver.
	// The book stays stored if attaching fails.
	Create(ctx context.Context, book model.Book, refs []model.AuthorRef) (*model.Book, error)

	// AttachAuthors adds refs to an existing book.
	AttachAuthors(ctx context.Context, id string, refs []model.AuthorRef) (*model.Book, error)

	// Get returns a single book by its ID.
	Get(ctx context.Context, id string) (*model.Book, error)

	// Detail returns a book and the authors its association set points at.
	Detail(ctx context.Context, id string) (*BookDetail, error)

	// List returns the books matching every present criterion of f.
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)

	// Delete removes a book and its associations; linked authors are kept.
	Delete(ctx context.Context, id string) error
}

type bookService struct {
	books    repository.BookRepository
	authors  repository.AuthorRepository
	resolver *AuthorResolver
}

// NewBookService constructs a new BookService.
func NewBookService(books repository.BookRepository, authors repository.AuthorRepository) BookService {
	return &bookService{
		books:    books,
		authors:  authors,
		resolver: NewAuthorResolver(books, authors),
	}
}

func (s *bookService) Create(ctx context.Context, book model.Book, refs []model.AuthorRef) (*model.Book, error) {
	if err := validateBook(&book); err != nil {
		return nil, err
	}
	if err := validateRefs(refs); err != nil {
		return nil, err
	}

	book.ID = uuid.NewString()
	book.File = nil
	book.AuthorIDs = nil

	stored, err := s.books.Create(ctx, &book)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	if stored.AuthorIDs == nil {
		stored.AuthorIDs = []string{}
	}
	return s.resolver.Attach(ctx, stored, refs)
}

func (s *bookService) AttachAuthors(ctx context.Context, id string, refs []model.AuthorRef) (*model.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolver.Attach(ctx, book, refs)
}

func (s *bookService) Get(ctx context.Context, id string) (*model.Book, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) Detail(ctx context.Context, id string) (*BookDetail, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	authors := make([]model.Author, 0, len(book.AuthorIDs))
	for _, authorID := range book.AuthorIDs {
		a, err := s.authors.FindByID(ctx, authorID)
		if errors.Is(err, repository.ErrNotFound) {
			// The author was deleted after being linked.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("find author %s: %w", authorID, err)
		}
		authors = append(authors, *a)
	}
	return &BookDetail{Book: *book, Authors: authors}, nil
}

func (s *bookService) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBooks(books, f), nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.books.Delete(ctx, id)
}
