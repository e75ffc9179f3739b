package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/apperr"
)

// AdminSecretField is the body field and query parameter carrying the admin secret.
const AdminSecretField = "adminPassword"

// OK writes a success envelope. Empty messages are omitted.
func OK(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// BadBody wraps a request body decoding failure.
func BadBody(err error) error {
	return fiber.NewError(http.StatusBadRequest, "invalid request body: "+err.Error())
}

// AdminSecret prefers the secret sent in the body and falls back to the query string.
func AdminSecret(c *fiber.Ctx, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return c.Query(AdminSecretField)
}

// StatusFor maps an error kind onto its HTTP status code.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAuth):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &fe):
		return fe.Code
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every failure as {"success": false, "error": "..."}.
// Unexpected errors are logged and reported without their internal message.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := StatusFor(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			if logger != nil {
				logger.Error("unhandled error",
					slog.String("method", c.Method()),
					slog.String("path", c.Path()),
					slog.Any("error", err),
				)
			}
			message = http.StatusText(status)
		}
		return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
	}
}
