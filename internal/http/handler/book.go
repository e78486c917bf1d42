package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/sc-task/internal/service"
)

// CreateBook godoc
// @Summary Create a book
// @Description Creates a book and attaches the listed authors. An author with an id is linked, one without is created.
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookRequest true "Book"
// @Success 201 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /books [post]
func CreateBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req bookRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		book, err := svc.Create(c.UserContext(), req.book(), authorRefs(req.Authors))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(book)
	}
}

// AttachAuthors godoc
// @Summary Attach authors to a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param authors body []authorRequest true "Author references"
// @Success 200 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /books/{id}/authors [post]
func AttachAuthors(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req []authorRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		book, err := svc.AttachAuthors(c.UserContext(), id, authorRefs(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(book)
	}
}

// ListBooks godoc
// @Summary List books
// @Description Every present filter must match exactly. author may repeat; a book must have all of them.
// @Tags books
// @Produce json
// @Param year query int false "Year"
// @Param genre query string false "Genre"
// @Param publisher query string false "Publisher"
// @Param title query string false "Title"
// @Param author query []string false "Author ID" collectionFormat(multi)
// @Success 200 {array} model.Book
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /books [get]
func ListBooks(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := parseBookFilter(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_YEAR", "invalid year")
		}

		books, err := svc.List(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(books)
	}
}

// GetBook godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /books/{id} [get]
func GetBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		book, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(book)
	}
}

// GetBookDetail godoc
// @Summary Get a book with its authors
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} service.BookDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /books/{id}/detail [get]
func GetBookDetail(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.Detail(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detail)
	}
}

// DeleteBook godoc
// @Summary Delete a book
// @Description Removes the book and its author links. Linked authors are kept.
// @Tags books
// @Param id path string true "Book ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /books/{id} [delete]
func DeleteBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
