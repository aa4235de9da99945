package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/client"
	"hostel-portal/app/logger"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else if _, ok := client.AsError(err); ok {
		code = web.FailureStatus(err)
		message = client.UserMessage(err, "")
	}

	if code >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("request failed")
		if fe == nil {
			message = client.DefaultMessage
		}
	}

	// Check if this is an API request
	if web.IsAPI(c) {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"code":    code,
		})
	}

	id := session.FromCtx(c)
	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", fiber.Map{
			"Title":       web.Title("Page Not Found"),
			"CurrentPage": "",
			"Home":        id.HomePath(),
		})
	case fiber.StatusForbidden:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        web.Title("Access Forbidden"),
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": message,
			"Home":         id.HomePath(),
		})
	default:
		title := "An Error Occurred"
		switch code {
		case fiber.StatusBadGateway:
			title = "Hostel Server Unavailable"
		case fiber.StatusGatewayTimeout:
			title = "Hostel Server Timed Out"
		}
		return c.Status(code).Render("error", fiber.Map{
			"Title":        web.Title(title),
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   title,
			"ErrorMessage": message,
			"ShowRetry":    code >= fiber.StatusInternalServerError,
			"Home":         id.HomePath(),
		})
	}
}
