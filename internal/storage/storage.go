// Package storage contains the blob store for uploaded book files.
// A blob is addressed by its name; Save never replaces an existing blob.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNotFound is returned by Load when no blob has the requested name.
	ErrNotFound = errors.New("blob not found")
	// ErrExists is returned by Save when a blob with the same name is already stored.
	ErrExists = errors.New("blob already exists")
	// ErrInvalidName is returned for names that cannot be stored (empty or escaping the root).
	ErrInvalidName = errors.New("invalid blob name")
)

// PutObjectOptions define optional parameters for saving blobs.
// Size should be the exact number of bytes if known, otherwise -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo contains basic information about a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage persists named byte streams.
type Storage interface {
	// Init prepares the storage root. It is safe to call on every start.
	Init(ctx context.Context) error
	// Save streams r under name. It fails with ErrExists if name is taken.
	Save(ctx context.Context, name string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Load opens the blob for streaming. The caller closes the reader.
	Load(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	// Exists reports whether a blob named name is stored.
	Exists(ctx context.Context, name string) (bool, error)
}
