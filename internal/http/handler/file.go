package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/sc-task/internal/service"
)

// UploadBookFile godoc
// @Summary Attach a file to a book
// @Description Stores the multipart field "file" under its original name. An existing name is never overwritten.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Book ID"
// @Param file formData file true "File"
// @Success 200 {object} messagePayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} messagePayload
// @Failure 417 {object} messagePayload
// @Router /books/{id}/upload [post]
func UploadBookFile(svc service.FileService, maxSize int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		// Checked before the book lookup.
		if maxSize > 0 && fh.Size > maxSize {
			return c.Status(fiber.StatusExpectationFailed).JSON(messagePayload{Message: msgFileTooLarge})
		}

		id := c.Params("id")
		if !validID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := svc.Upload(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			var se *service.StorageError
			switch {
			case errors.Is(err, service.ErrNotFound):
				return c.Status(fiber.StatusNotFound).JSON(messagePayload{Message: "Book not found."})
			case errors.As(err, &se):
				return c.Status(fiber.StatusExpectationFailed).JSON(messagePayload{
					Message: fmt.Sprintf("Could not upload file: %s.", se.Filename),
				})
			}
			return writeServiceError(c, err)
		}
		return c.JSON(messagePayload{Message: res.Message})
	}
}

// DownloadBookFile godoc
// @Summary Download the file attached to a book
// @Tags files
// @Produce octet-stream
// @Param id path string true "Book ID"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /books/{id}/download [get]
func DownloadBookFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		dl, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		// Sets Content-Disposition and a Content-Type guessed from the extension.
		c.Attachment(dl.Filename)
		if dl.ContentType != "" {
			c.Set(fiber.HeaderContentType, dl.ContentType)
		}
		// The body is closed once the stream has been written.
		return c.SendStream(dl.Body, int(dl.Size))
	}
}
