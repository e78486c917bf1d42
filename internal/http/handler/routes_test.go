package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sc-task/internal/model"
	serviceMocks "github.com/dtroode/sc-task/internal/service/mocks"
)

func TestRegisterRoutes(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	books := new(serviceMocks.MockBookService)
	authors := new(serviceMocks.MockAuthorService)
	files := new(serviceMocks.MockFileService)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, Services{
		Books:         books,
		Authors:       authors,
		Files:         files,
		MaxUploadSize: 1 << 20,
		Gatherer:      prometheus.NewRegistry(),
	})

	id := uuid.NewString()
	books.On("List", mock.Anything, model.BookFilter{}).Return([]model.Book{}, nil)
	books.On("Get", mock.Anything, id).Return(&model.Book{ID: id}, nil)
	books.On("Delete", mock.Anything, id).Return(nil)
	authors.On("List", mock.Anything).Return([]model.Author{}, nil)
	authors.On("Delete", mock.Anything, id).Return(nil)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/books", http.StatusOK},
		{http.MethodGet, "/books/", http.StatusOK},
		{http.MethodGet, "/books/" + id, http.StatusOK},
		{http.MethodDelete, "/books/" + id, http.StatusNoContent},
		{http.MethodGet, "/authors", http.StatusOK},
		{http.MethodDelete, "/authors/" + id, http.StatusNoContent},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
