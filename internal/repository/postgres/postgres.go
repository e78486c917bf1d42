// Package postgres implements the repository interfaces on PostgreSQL using
// database/sql with parameterized queries.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/dtroode/sc-task/internal/repository"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// notFound maps sql.ErrNoRows to repository.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
