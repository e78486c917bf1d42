// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, cached) inside this directory.
package repository

import "errors"

// ErrNotFound is returned by lookups when no record has the requested ID.
var ErrNotFound = errors.New("record not found")
