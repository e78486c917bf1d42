package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
)

var authorRowColumns = []string{"id", "firstname", "lastname", "middlename", "birth_date", "death_date", "description"}

func TestAuthorPostgres_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthorPostgres(db)

	birth := model.NewDate(1920, time.October, 8)
	author := &model.Author{
		ID:        "a1",
		Firstname: "Frank",
		Lastname:  "Herbert",
		BirthDate: &birth,
	}

	mock.ExpectQuery("INSERT INTO authors").
		WithArgs("a1", "Frank", "Herbert", nil, birth.Time, nil, nil).
		WillReturnRows(sqlmock.NewRows(authorRowColumns).
			AddRow("a1", "Frank", "Herbert", nil, birth.Time, nil, nil))

	got, err := repo.Create(context.Background(), author)

	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, "1920-10-08", got.BirthDate.String())
	assert.Nil(t, got.DeathDate)
	assert.Nil(t, got.Middlename)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorPostgres_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuthorPostgres(db)

		mock.ExpectQuery("SELECT (.+) FROM authors WHERE id = ?").
			WithArgs("a1").
			WillReturnRows(sqlmock.NewRows(authorRowColumns).
				AddRow("a1", "Frank", "Herbert", "Patrick", nil, nil, "Dune author"))

		a, err := repo.FindByID(ctx, "a1")

		require.NoError(t, err)
		require.NotNil(t, a.Middlename)
		assert.Equal(t, "Patrick", *a.Middlename)
		require.NotNil(t, a.Description)
		assert.Equal(t, "Dune author", *a.Description)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuthorPostgres(db)

		mock.ExpectQuery("SELECT (.+) FROM authors WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, a)
	})
}

func TestAuthorPostgres_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthorPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM authors").
		WillReturnRows(sqlmock.NewRows(authorRowColumns).
			AddRow("a1", "Frank", "Herbert", nil, nil, nil, nil).
			AddRow("a2", "Jane", "Austen", nil, nil, nil, nil))

	items, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Austen", items[1].Lastname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorPostgres_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthorPostgres(db)

	mock.ExpectExec("DELETE FROM authors WHERE id = ?").
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "a1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
