package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	store *memoryStore[models.Order]
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	store := newMemoryStore(func(o *models.Order) primitive.ObjectID { return o.ID })
	store.clone = func(o models.Order) models.Order {
		items := make([]models.OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		return o
	}
	return &MemoryOrderRepository{store: store}
}

// List returns one page of orders in insertion order.
func (r *MemoryOrderRepository) List(_ context.Context, page, limit int) (*models.Page[models.Order], error) {
	docs, total := r.store.list(page, limit)
	return models.NewPage(docs, total, page, limit), nil
}

// GetByID returns an order by its ID.
func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (*models.Order, error) {
	return r.store.get(id)
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = now()
	order.UpdatedAt = order.CreatedAt
	return r.store.insert(order)
}

// Update modifies an existing order.
func (r *MemoryOrderRepository) Update(_ context.Context, order *models.Order) (*models.Order, error) {
	order.UpdatedAt = now()
	return r.store.replace(order)
}

// Delete removes an order by its ID.
func (r *MemoryOrderRepository) Delete(_ context.Context, id string) (*models.Order, error) {
	return r.store.remove(id)
}
