package repositories

import (
	"context"

	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByID, Update and Delete return (nil, nil) for a well-formed id that matches
// no document and apperrors.ErrInvalidID for a malformed one.
type ProductRepository interface {
	List(ctx context.Context, page, limit int) (*models.Page[models.Product], error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) (*models.Product, error)
}
