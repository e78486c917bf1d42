package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local stores blobs as files directly under a root directory.
//
// Save writes to a temporary file and hard-links it into place, so a blob is
// either fully present or absent and an existing name is never overwritten.
type Local struct {
	root string
}

var _ Storage = (*Local)(nil)

// NewLocal creates a Local backend rooted at root. Call Init before use.
func NewLocal(root string) (*Local, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	return &Local{root: absRoot}, nil
}

// Root returns the absolute storage directory.
func (l *Local) Root() string { return l.root }

// Init creates the root directory if it does not exist.
func (l *Local) Init(_ context.Context) error {
	if err := os.MkdirAll(l.root, 0o750); err != nil {
		return fmt.Errorf("create storage root %q: %w", l.root, err)
	}
	return nil
}

// abs resolves name to a path inside root.
func (l *Local) abs(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}
	joined := filepath.Join(l.root, filepath.Clean(filepath.FromSlash(name)))
	rel, err := filepath.Rel(l.root, joined)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %q escapes storage root", ErrInvalidName, name)
	}
	return joined, nil
}

func (l *Local) Save(_ context.Context, name string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	dest, err := l.abs(name)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return ObjectInfo{}, fmt.Errorf("mkdir %q: %w", filepath.Dir(dest), err)
	}

	tmp := filepath.Join(filepath.Dir(dest), "."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("open tmp %q: %w", tmp, err)
	}
	defer os.Remove(tmp) //nolint:errcheck

	n, werr := io.Copy(f, r)
	cerr := f.Close()
	if werr != nil {
		return ObjectInfo{}, fmt.Errorf("stream write: %w", werr)
	}
	if cerr != nil {
		return ObjectInfo{}, fmt.Errorf("flush: %w", cerr)
	}

	if err := os.Link(tmp, dest); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ObjectInfo{}, fmt.Errorf("%w: %s", ErrExists, name)
		}
		return ObjectInfo{}, fmt.Errorf("link to %q: %w", dest, err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          name,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: info.ModTime(),
	}, nil
}

func (l *Local) Load(_ context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	path, err := l.abs(name)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f, ObjectInfo{Key: name, Size: st.Size(), LastModified: st.ModTime()}, nil
}

func (l *Local) Exists(_ context.Context, name string) (bool, error) {
	path, err := l.abs(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
