package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	store *memoryStore[models.Product]
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	store := newMemoryStore(func(p *models.Product) primitive.ObjectID { return p.ID })
	store.addUnique("name", func(p *models.Product) string { return p.Name })
	return &MemoryProductRepository{store: store}
}

// List returns one page of products in insertion order.
func (r *MemoryProductRepository) List(_ context.Context, page, limit int) (*models.Page[models.Product], error) {
	docs, total := r.store.list(page, limit)
	return models.NewPage(docs, total, page, limit), nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	return r.store.get(id)
}

// Create adds a new product.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt
	return r.store.insert(product)
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	product.UpdatedAt = now()
	return r.store.replace(product)
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) (*models.Product, error) {
	return r.store.remove(id)
}
