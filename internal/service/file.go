package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtroode/sc-task/internal/repository"
	"github.com/dtroode/sc-task/internal/storage"
)

var ErrReaderNil = errors.New("reader is nil")

// UploadResult confirms a stored upload.
type UploadResult struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// Download is an attached file opened for streaming. The caller closes Body.
type Download struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// FileService attaches one file to a book and streams it back.
type FileService interface {
	// Upload stores r under filename and records it as the book's file.
	// The book is looked up first; nothing is stored for a missing book.
	// A store failure returns *StorageError and leaves the book untouched.
	// A previously attached file is not removed.
	Upload(ctx context.Context, bookID string, r io.Reader, filename, contentType string, size int64) (*UploadResult, error)

	// Download opens the file attached to the book.
	Download(ctx context.Context, bookID string) (*Download, error)
}

type fileService struct {
	books repository.BookRepository
	store storage.Storage
}

// NewFileService constructs a new FileService.
func NewFileService(books repository.BookRepository, store storage.Storage) FileService {
	return &fileService{books: books, store: store}
}

func (s *fileService) findBook(ctx context.Context, bookID string) error {
	if bookID == "" {
		return ErrIDRequired
	}
	_, err := s.books.FindByID(ctx, bookID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookNotFound
	}
	return err
}

func (s *fileService) Upload(ctx context.Context, bookID string, r io.Reader, filename, contentType string, size int64) (*UploadResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("book.id", bookID),
		attribute.String("file.name", filename),
		attribute.Int64("file.size", size),
	)
	if err := s.findBook(ctx, bookID); err != nil {
		return nil, err
	}

	info, err := s.store.Save(ctx, filename, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, &StorageError{Filename: filename, Err: err}
	}

	if err := s.books.SetFile(ctx, bookID, filename); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deleted between lookup and update; the blob stays orphaned.
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("record file on book: %w", err)
	}

	log.Info().
		Str("book_id", bookID).
		Str("filename", filename).
		Str("size", humanize.Bytes(uint64(info.Size))).
		Msg("book file uploaded")

	return &UploadResult{
		Filename: filename,
		Message:  fmt.Sprintf("File uploaded successfully: %s.", filename),
	}, nil
}

func (s *fileService) Download(ctx context.Context, bookID string) (*Download, error) {
	if bookID == "" {
		return nil, ErrIDRequired
	}
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if book.File == nil {
		return nil, ErrFileNotFound
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("book.id", bookID),
		attribute.String("file.name", *book.File),
	)

	rc, info, err := s.store.Load(ctx, *book.File)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, *book.File)
		}
		return nil, fmt.Errorf("load file: %w", err)
	}
	return &Download{
		Filename:    *book.File,
		ContentType: info.ContentType,
		Size:        info.Size,
		Body:        rc,
	}, nil
}
