package web

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/client"
	"hostel-portal/app/models"
)

// UploadFunc sends a CSV file to the backend.
type UploadFunc func(ctx context.Context, filename string, r io.Reader) (models.Message, error)

// Upload forwards the submitted file part to the backend untouched.
func Upload(c *fiber.Ctx, send UploadFunc) (models.Message, error) {
	fh, err := c.FormFile(client.UploadField)
	if err != nil {
		return models.Message{}, client.Validation("Please select a file to upload.")
	}
	f, err := fh.Open()
	if err != nil {
		return models.Message{}, client.Validation("Could not read the uploaded file.")
	}
	defer f.Close()
	return send(Ctx(c), fh.Filename, f)
}
