// Package cached decorates repositories with a read-through cache.
package cached

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dtroode/sc-task/internal/cache"
	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

const bookKeyPrefix = "book:"

// BookRepository caches FindByID results and drops the entry after every
// write that touches the book. Cache failures are logged and never fail the call.
type BookRepository struct {
	repository.BookRepository
	cache cache.Cache
	ttl   time.Duration
}

var _ repository.BookRepository = (*BookRepository)(nil)

// NewBookRepository wraps next with c. Entries expire after ttl.
func NewBookRepository(next repository.BookRepository, c cache.Cache, ttl time.Duration) *BookRepository {
	return &BookRepository{BookRepository: next, cache: c, ttl: ttl}
}

func bookKey(id string) string {
	return bookKeyPrefix + id
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	var cachedBook model.Book
	found, err := r.cache.Get(ctx, bookKey(id), &cachedBook)
	if err != nil {
		log.Warn().Err(err).Str("book_id", id).Msg("book cache read failed")
	}
	if found {
		return &cachedBook, nil
	}

	book, err := r.BookRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, bookKey(id), book, r.ttl); err != nil {
		log.Warn().Err(err).Str("book_id", id).Msg("book cache write failed")
	}
	return book, nil
}

func (r *BookRepository) LinkAuthor(ctx context.Context, bookID, authorID string) error {
	err := r.BookRepository.LinkAuthor(ctx, bookID, authorID)
	r.invalidate(ctx, bookID)
	return err
}

func (r *BookRepository) SetFile(ctx context.Context, bookID, filename string) error {
	err := r.BookRepository.SetFile(ctx, bookID, filename)
	r.invalidate(ctx, bookID)
	return err
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	err := r.BookRepository.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *BookRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, bookKey(id)); err != nil {
		log.Warn().Err(err).Str("book_id", id).Msg("book cache invalidation failed")
	}
}
