package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	products mongoCollection[models.Product]
}

// NewMongoProductRepository creates a repository over the products collection.
func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		products: mongoCollection[models.Product]{coll: coll, entity: "product", unique: []string{"name"}},
	}
}

// List returns one page of products ordered by ID.
func (r *MongoProductRepository) List(ctx context.Context, page, limit int) (*models.Page[models.Product], error) {
	docs, total, err := r.products.list(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return models.NewPage(docs, total, page, limit), nil
}

// GetByID retrieves a single product by its ID.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.products.findByID(ctx, id)
}

// Create inserts product, assigning its ID and timestamps.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt
	return r.products.insert(ctx, product)
}

// Update replaces the stored product and returns the new version.
func (r *MongoProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.UpdatedAt = now()
	return r.products.replace(ctx, product.ID, product)
}

// Delete removes a product by its ID and returns it.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	return r.products.deleteByID(ctx, id)
}
