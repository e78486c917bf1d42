package postgres

import (
	"context"
	"database/sql"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

// BookPostgres is a PostgreSQL implementation of repository.BookRepository.
type BookPostgres struct {
	db *sql.DB
}

// NewBookPostgres creates a new BookPostgres repository.
func NewBookPostgres(db *sql.DB) *BookPostgres {
	return &BookPostgres{db: db}
}

var _ repository.BookRepository = (*BookPostgres)(nil)

const bookColumns = `id, title, year, genre, pages, publisher, file`

func scanBook(s scanner) (*model.Book, error) {
	var b model.Book
	if err := s.Scan(&b.ID, &b.Title, &b.Year, &b.Genre, &b.Pages, &b.Publisher, &b.File); err != nil {
		return nil, err
	}
	b.AuthorIDs = []string{}
	return &b, nil
}

// Create inserts a new book row and returns the stored record.
func (r *BookPostgres) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	const q = `
		INSERT INTO books (id, title, year, genre, pages, publisher, file)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookColumns
	row := r.db.QueryRowContext(ctx, q,
		book.ID,
		book.Title,
		book.Year,
		book.Genre,
		book.Pages,
		book.Publisher,
		book.File,
	)
	return scanBook(row)
}

// FindByID fetches a single book and its author IDs.
func (r *BookPostgres) FindByID(ctx context.Context, id string) (*model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}

	const qAuthors = `SELECT author_id FROM book_authors WHERE book_id = $1`
	rows, err := r.db.QueryContext(ctx, qAuthors, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var authorID string
		if err := rows.Scan(&authorID); err != nil {
			return nil, err
		}
		b.AuthorIDs = append(b.AuthorIDs, authorID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all books and attaches the association rows in a second query.
func (r *BookPostgres) List(ctx context.Context) ([]model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	index := make(map[string]int)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		index[b.ID] = len(books)
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}

	const qLinks = `SELECT book_id, author_id FROM book_authors`
	links, err := r.db.QueryContext(ctx, qLinks)
	if err != nil {
		return nil, err
	}
	defer links.Close()

	for links.Next() {
		var bookID, authorID string
		if err := links.Scan(&bookID, &authorID); err != nil {
			return nil, err
		}
		// A book inserted between the two queries has no entry yet.
		if i, ok := index[bookID]; ok {
			books[i].AuthorIDs = append(books[i].AuthorIDs, authorID)
		}
	}
	if err := links.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// LinkAuthor inserts an association row, ignoring an existing one.
func (r *BookPostgres) LinkAuthor(ctx context.Context, bookID, authorID string) error {
	const q = `
		INSERT INTO book_authors (book_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (book_id, author_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, bookID, authorID)
	return err
}

// SetFile overwrites the attached file name of a book.
func (r *BookPostgres) SetFile(ctx context.Context, bookID, filename string) error {
	const q = `UPDATE books SET file = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, bookID, filename)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a book by ID. Association rows go with it through ON DELETE CASCADE.
func (r *BookPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM books WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
