package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/sc-task/internal/service"
)

// CreateAuthor godoc
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body authorRequest true "Author"
// @Success 201 {object} model.Author
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /authors [post]
func CreateAuthor(svc service.AuthorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req authorRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		author, err := svc.Create(c.UserContext(), req.author())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(author)
	}
}

// ListAuthors godoc
// @Summary List authors
// @Description Returns every author. Filter parameters are accepted and ignored.
// @Tags authors
// @Produce json
// @Success 200 {array} model.Author
// @Failure 500 {object} errorPayload
// @Router /authors [get]
func ListAuthors(svc service.AuthorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authors, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(authors)
	}
}

// DeleteAuthor godoc
// @Summary Delete an author
// @Description Books linked to the author keep the link.
// @Tags authors
// @Param id path string true "Author ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /authors/{id} [delete]
func DeleteAuthor(svc service.AuthorService) fiber.Handler {
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
