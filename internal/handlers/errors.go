package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"usergroups/internal/services"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Message   string            `json:"message"`
	Error     string            `json:"error"`
	Status    int               `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// statusFor maps a service error kind to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	if status == fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("request failed")
		message = "An unexpected error occurred"
	}

	return c.Status(status).JSON(newErrorResponse(c, status, message))
}

func respondValidationError(c *fiber.Ctx, fields map[string]string) error {
	body := newErrorResponse(c, fiber.StatusBadRequest, "Validation failed")
	body.Errors = fields
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func newErrorResponse(c *fiber.Ctx, status int, message string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Error:     utils.StatusMessage(status),
		Status:    status,
		Timestamp: time.Now().UTC(),
		Path:      c.Path(),
	}
}
