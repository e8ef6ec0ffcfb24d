package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WithLogger attaches a request-scoped zerolog logger to the user context.
// Handlers retrieve it with zerolog.Ctx(c.UserContext()).
func WithLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)

		logger := log.With().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(logger.WithContext(c.UserContext()))

		return c.Next()
	}
}
