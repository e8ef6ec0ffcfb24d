package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"usergroups/internal/models"
	"usergroups/internal/services"
)

// GroupHandler handles HTTP requests for groups.
type GroupHandler struct {
	service         *services.GroupService
	validate        *validator.Validate
	defaultPageSize int
	maxPageSize     int
}

// NewGroupHandler creates a new GroupHandler. Search pages default to defaultPageSize
// items and are capped at maxPageSize.
func NewGroupHandler(service *services.GroupService, defaultPageSize, maxPageSize int) *GroupHandler {
	return &GroupHandler{
		service:         service,
		validate:        newValidator(),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes registers the group routes with the Fiber app.
func (h *GroupHandler) RegisterRoutes(router fiber.Router) {
	groupRoutes := router.Group("/groups")
	groupRoutes.Get("/", h.HandleGetGroups)
	groupRoutes.Post("/", h.HandleCreateGroup)
	// before /:id so "search" is not taken for an id
	groupRoutes.Get("/search", h.HandleSearchGroups)
	groupRoutes.Get("/:id", h.HandleGetGroupByID)
	groupRoutes.Put("/:id", h.HandleUpdateGroup)
	groupRoutes.Patch("/:id", h.HandlePatchGroup)
	groupRoutes.Delete("/:id", h.HandleDeleteGroup)
}

// HandleGetGroups lists ACTIVE groups.
func (h *GroupHandler) HandleGetGroups(c *fiber.Ctx) error {
	groups, err := h.service.GetAllGroups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// HandleSearchGroups pages through ACTIVE groups by name, ?name=&page=&size=.
func (h *GroupHandler) HandleSearchGroups(c *fiber.Ctx) error {
	size := c.QueryInt("size", h.defaultPageSize)
	if size > h.maxPageSize {
		size = h.maxPageSize
	}
	page := models.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: size,
	}

	result, err := h.service.SearchGroups(c.Query("name"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// HandleGetGroupByID retrieves a single group by its ID.
func (h *GroupHandler) HandleGetGroupByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	group, err := h.service.GetGroupByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(group)
}

// HandleCreateGroup creates a new group administered by an ACTIVE user.
func (h *GroupHandler) HandleCreateGroup(c *fiber.Ctx) error {
	var input models.GroupInput
	if ok, err := bindInput(c, h.validate, &input); !ok {
		return err
	}
	canonicalID(input.AdminID)

	group, err := h.service.CreateGroup(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (h *GroupHandler) HandleUpdateGroup(c *fiber.Ctx) error {
	return h.update(c, h.service.UpdateGroup)
}

func (h *GroupHandler) HandlePatchGroup(c *fiber.Ctx) error {
	return h.update(c, h.service.PatchGroup)
}

func (h *GroupHandler) update(c *fiber.Ctx, apply func(string, models.GroupInput) (models.GroupResponse, error)) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var input models.GroupInput
	if ok, err := bindInput(c, h.validate, &input); !ok {
		return err
	}
	canonicalID(input.AdminID)

	group, err := apply(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(group)
}

// HandleDeleteGroup soft-deletes a group.
func (h *GroupHandler) HandleDeleteGroup(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteGroup(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
