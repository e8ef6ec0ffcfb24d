package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"usergroups/internal/models"
	"usergroups/internal/services"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Patch("/:id", h.HandlePatchUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists ACTIVE users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by its ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var input models.UserInput
	if ok, err := bindInput(c, h.validate, &input); !ok {
		return err
	}

	user, err := h.service.CreateUser(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser applies the fields present in the body to a user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	return h.update(c, h.service.UpdateUser)
}

// HandlePatchUser is HandleUpdateUser for PATCH.
func (h *UserHandler) HandlePatchUser(c *fiber.Ctx) error {
	return h.update(c, h.service.PatchUser)
}

func (h *UserHandler) update(c *fiber.Ctx, apply func(string, models.UserInput) (models.UserResponse, error)) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var input models.UserInput
	if ok, err := bindInput(c, h.validate, &input); !ok {
		return err
	}

	user, err := apply(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleDeleteUser soft-deletes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteUser(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
