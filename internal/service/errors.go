package service

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrIDRequired = errors.New("id is required")

	// ErrNotFound is the root of every lookup failure returned by this package.
	ErrNotFound       = errors.New("not found")
	ErrBookNotFound   = fmt.Errorf("book %w", ErrNotFound)
	ErrAuthorNotFound = fmt.Errorf("author %w", ErrNotFound)
	ErrFileNotFound   = fmt.Errorf("file %w", ErrNotFound)
)

// StorageError reports that the blob store rejected an upload. The book was not modified.
type StorageError struct {
	Filename string
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store file %q: %v", e.Filename, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError wraps field errors produced by ozzo-validation.
type ValidationError struct {
	Errs validation.Errors
}

func (e *ValidationError) Error() string {
	return e.Errs.Error()
}

func (e *ValidationError) Unwrap() error { return e.Errs }

// asValidationError converts the result of validation.ValidateStruct into a *ValidationError.
// Internal rule errors pass through unchanged.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		return &ValidationError{Errs: errs}
	}
	return err
}
