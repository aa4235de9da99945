package devbackend

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// apiError is a failure with the status and message the backend answers with.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

func badRequest(msg string) error { return &apiError{status: http.StatusBadRequest, message: msg} }
func notFound(msg string) error   { return &apiError{status: http.StatusNotFound, message: msg} }
func conflict(msg string) error   { return &apiError{status: http.StatusConflict, message: msg} }

var errUnauthorized = &apiError{status: http.StatusUnauthorized, message: "Unauthorized"}

func errorHandler(c *fiber.Ctx, err error) error {
	var ae *apiError
	if errors.As(err, &ae) {
		return c.Status(ae.status).JSON(fiber.Map{"message": ae.message})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
