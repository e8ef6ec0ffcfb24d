package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"usergroups/internal/handlers"
	"usergroups/internal/middleware"
	"usergroups/internal/services"
)

// Options wires the services into the HTTP API.
type Options struct {
	Users  *services.UserService
	Groups *services.GroupService
	// Tokens guards /api/v1 when set.
	Tokens          *services.TokenService
	DefaultPageSize int
	MaxPageSize     int
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

// New builds the Fiber app: health check, request logging and the /api/v1 routes.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "usergroups",
	})

	app.Use(recover.New())
	app.Use(middleware.WithLogger())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1")
	if opts.Tokens != nil {
		apiV1.Use(middleware.AuthRequired(opts.Tokens))
	}

	handlers.NewUserHandler(opts.Users).RegisterRoutes(apiV1)
	handlers.NewGroupHandler(opts.Groups, opts.DefaultPageSize, opts.MaxPageSize).RegisterRoutes(apiV1)

	return app
}
