package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"usergroups/internal/services"
)

// SubjectKey is the Locals key holding the authenticated token subject.
const SubjectKey = "subject"

var (
	errMissingHeader = errors.New("authorization header is required")
	errHeaderFormat  = errors.New("authorization header format must be 'Bearer <token>'")
	errNoSubject     = errors.New("token has no subject")
)

// AuthRequired rejects requests without a valid bearer token issued by tokenService.
// The token subject is stored under SubjectKey.
func AuthRequired(tokenService *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return unauthorized(c, err.Error(), nil)
		}

		claims, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("JWT validation failed")
			return unauthorized(c, "Invalid or expired token", err)
		}

		subject, ok := claims["sub"].(string)
		if !ok || subject == "" {
			zerolog.Ctx(c.UserContext()).Warn().Msg("JWT without a string subject")
			return unauthorized(c, "Invalid or expired token", errNoSubject)
		}

		c.Locals(SubjectKey, subject)
		return c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", errHeaderFormat
	}
	return token, nil
}

func unauthorized(c *fiber.Ctx, message string, cause error) error {
	body := fiber.Map{"message": message}
	if cause != nil {
		body["error"] = cause.Error()
	}
	return c.Status(fiber.StatusUnauthorized).JSON(body)
}
