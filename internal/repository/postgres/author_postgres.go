package postgres

import (
	"context"
	"database/sql"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

// AuthorPostgres is a PostgreSQL implementation of repository.AuthorRepository.
type AuthorPostgres struct {
	db *sql.DB
}

// NewAuthorPostgres creates a new AuthorPostgres repository.
func NewAuthorPostgres(db *sql.DB) *AuthorPostgres {
	return &AuthorPostgres{db: db}
}

var _ repository.AuthorRepository = (*AuthorPostgres)(nil)

const authorColumns = `id, firstname, lastname, middlename, birth_date, death_date, description`

func scanAuthor(s scanner) (*model.Author, error) {
	var a model.Author
	if err := s.Scan(
		&a.ID,
		&a.Firstname,
		&a.Lastname,
		&a.Middlename,
		&a.BirthDate,
		&a.DeathDate,
		&a.Description,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new author row and returns the stored record.
func (r *AuthorPostgres) Create(ctx context.Context, author *model.Author) (*model.Author, error) {
	const q = `
		INSERT INTO authors (id, firstname, lastname, middlename, birth_date, death_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + authorColumns
	row := r.db.QueryRowContext(ctx, q,
		author.ID,
		author.Firstname,
		author.Lastname,
		author.Middlename,
		author.BirthDate,
		author.DeathDate,
		author.Description,
	)
	return scanAuthor(row)
}

// FindByID fetches a single author by its ID.
func (r *AuthorPostgres) FindByID(ctx context.Context, id string) (*model.Author, error) {
	const q = `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`
	a, err := scanAuthor(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// List returns all authors in store order.
func (r *AuthorPostgres) List(ctx context.Context) ([]model.Author, error) {
	const q = `SELECT ` + authorColumns + ` FROM authors`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an author by ID. It does not return an error if the row does not exist.
func (r *AuthorPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM authors WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
