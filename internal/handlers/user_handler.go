package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

const userEntity = "User"

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	page, limit := pagination(c)
	users, err := h.service.ListUsers(c.UserContext(), page, limit)
	if err != nil {
		return writeError(c, userEntity, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, userEntity, err)
	}
	return c.JSON(user)
}

// HandleCreateUser registers a new user. The response never carries the password.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var fields models.UserFields
	if err := parseBody(c, &fields); err != nil {
		return badBody(c, err)
	}
	user, err := h.service.CreateUser(c.UserContext(), fields)
	if err != nil {
		return writeError(c, userEntity, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var patch models.UserFields
	if err := parseBody(c, &patch); err != nil {
		return badBody(c, err)
	}
	user, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return writeError(c, userEntity, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	user, err := h.service.DeleteUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, userEntity, err)
	}
	return c.JSON(user)
}
