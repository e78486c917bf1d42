package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/sc-task/internal/service"
)

// Services groups the dependencies the HTTP surface needs.
type Services struct {
	Books   service.BookService
	Authors service.AuthorService
	Files   service.FileService

	// MaxUploadSize is the largest accepted upload in bytes; 0 disables the check.
	MaxUploadSize int64
	// Gatherer backs /metrics. Nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
	// Checks are probed by /health in addition to the database.
	Checks []Checker
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, s Services) {
	app.Get("/health", HealthCheck(db, s.Checks...))
	app.Get("/healthz", LivenessProbe())
	if s.Gatherer != nil {
		app.Get("/metrics", Metrics(s.Gatherer))
	}

	books := app.Group("/books")
	books.Post("/", CreateBook(s.Books))
	books.Get("/", ListBooks(s.Books))
	books.Get("/:id", GetBook(s.Books))
	books.Delete("/:id", DeleteBook(s.Books))
	books.Get("/:id/detail", GetBookDetail(s.Books))
	books.Post("/:id/authors", AttachAuthors(s.Books))
	books.Post("/:id/upload", UploadBookFile(s.Files, s.MaxUploadSize))
	books.Get("/:id/download", DownloadBookFile(s.Files))

	authors := app.Group("/authors")
	authors.Post("/", CreateAuthor(s.Authors))
	authors.Get("/", ListAuthors(s.Authors))
	authors.Delete("/:id", DeleteAuthor(s.Authors))
}
