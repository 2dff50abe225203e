package repositories

import (
	"context"

	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	List(ctx context.Context, page, limit int) (*models.Page[models.Order], error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) (*models.Order, error)
	Delete(ctx context.Context, id string) (*models.Order, error)
}
