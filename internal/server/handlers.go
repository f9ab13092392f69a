package server

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/parsecv/parsecv/internal/common"
	"github.com/parsecv/parsecv/internal/extract"
)

// parseResponse wraps the final record under a stable top-level key.
type parseResponse struct {
	ParsedResume any `json:"parsed_resume"`
}

func registerRoutes(app *fiber.App, parser ResumeParser) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Parse an uploaded résumé (multipart/form-data, field name: file).
	app.Post("/resume/parse", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}

		rec, err := parser.ParseDocument(c.UserContext(), extract.Document{
			Bytes:    data,
			Filename: fh.Filename,
		})
		if err != nil {
			if errors.Is(err, common.ErrUnreadableDocument) {
				return writeError(c, fiber.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT", "document could not be read")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(parseResponse{ParsedResume: rec})
	})
}
