package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	users mongoCollection[models.User]
}

// NewMongoUserRepository creates a repository over the users collection.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{
		users: mongoCollection[models.User]{coll: coll, entity: "user", unique: []string{"name", "email"}},
	}
}

// List returns one page of users ordered by ID.
func (r *MongoUserRepository) List(ctx context.Context, page, limit int) (*models.Page[models.User], error) {
	docs, total, err := r.users.list(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return models.NewPage(docs, total, page, limit), nil
}

// GetByID retrieves a single user by its ID.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.users.findByID(ctx, id)
}

// Create inserts user, assigning its ID and timestamps.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	return r.users.insert(ctx, user)
}

// Update replaces the stored user. A unique index collision on name or email
// surfaces as *apperrors.DuplicateKeyError.
func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	user.UpdatedAt = now()
	return r.users.replace(ctx, user.ID, user)
}

// Delete removes a user by its ID and returns it.
func (r *MongoUserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	return r.users.deleteByID(ctx, id)
}
