package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

// MongoOrderRepository is a MongoDB implementation of OrderRepository.
type MongoOrderRepository struct {
	orders mongoCollection[models.Order]
}

// NewMongoOrderRepository creates a repository over the orders collection.
func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{
		orders: mongoCollection[models.Order]{coll: coll, entity: "order"},
	}
}

// List returns one page of orders, oldest first.
func (r *MongoOrderRepository) List(ctx context.Context, page, limit int) (*models.Page[models.Order], error) {
	docs, total, err := r.orders.list(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return models.NewPage(docs, total, page, limit), nil
}

// GetByID retrieves a single order by its ID.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.orders.findByID(ctx, id)
}

// Create inserts order, assigning its ID and timestamps.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = now()
	order.UpdatedAt = order.CreatedAt
	return r.orders.insert(ctx, order)
}

// Update replaces the stored order and returns the new version.
func (r *MongoOrderRepository) Update(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.UpdatedAt = now()
	return r.orders.replace(ctx, order.ID, order)
}

// Delete removes an order by its ID and returns it.
func (r *MongoOrderRepository) Delete(ctx context.Context, id string) (*models.Order, error) {
	return r.orders.deleteByID(ctx, id)
}
