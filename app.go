package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/logging"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/internal/validation"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the repositories the app serves plus an optional store health check.
type Deps struct {
	Products repositories.ProductRepository
	Users    repositories.UserRepository
	Orders   repositories.OrderRepository
	Store    Pinger
}

// NewApp assembles the Fiber app: middleware, health and metrics endpoints and
// the entity routes.
func NewApp(cfg *config.Config, logger *slog.Logger, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "storefront",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	metrics := middleware.NewMetrics()

	// --- Middleware ---
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(metrics.Middleware())
	app.Use(middleware.OriginGuard(cfg.AllowedOrigins, cfg.RequireOrigin))
	app.Use(middleware.CORS(cfg.AllowedOrigins))

	// --- Health Check & Metrics ---
	app.Get("/health", healthHandler(deps.Store))
	app.Get("/metrics", metrics.Handler())

	// --- API Routes ---
	v := validation.New()
	productService := services.NewProductService(deps.Products, v)
	userService := services.NewUserService(deps.Users, v)
	orderService := services.NewOrderService(deps.Orders, deps.Products, v)

	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewProductHandler(productService).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app)

	return app
}

func healthHandler(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store != nil {
			if err := store.Ping(c.UserContext()); err != nil {
				logging.FromContext(c.UserContext()).Error("store ping failed", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// errorHandler renders errors that escaped the handlers, such as unknown
// routes and recovered panics, in the same {message} shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
