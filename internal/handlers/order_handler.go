package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

const orderEntity = "Order"

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id", h.HandleUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleGetOrders returns one page of orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	page, limit := pagination(c)
	orders, err := h.service.ListOrders(c.UserContext(), page, limit)
	if err != nil {
		return writeError(c, orderEntity, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, orderEntity, err)
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order. Item prices and the total are taken
// from the product catalogue, not from the request.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var fields models.OrderFields
	if err := parseBody(c, &fields); err != nil {
		return badBody(c, err)
	}
	order, err := h.service.CreateOrder(c.UserContext(), fields)
	if err != nil {
		return writeError(c, orderEntity, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrder applies a partial update and re-prices the order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	var patch models.OrderFields
	if err := parseBody(c, &patch); err != nil {
		return badBody(c, err)
	}
	order, err := h.service.UpdateOrder(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return writeError(c, orderEntity, err)
	}
	return c.JSON(order)
}

// HandleDeleteOrder deletes an order and returns the removed document.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	order, err := h.service.DeleteOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, orderEntity, err)
	}
	return c.JSON(order)
}
