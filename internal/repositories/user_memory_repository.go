package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	store *memoryStore[models.User]
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	store := newMemoryStore(func(u *models.User) primitive.ObjectID { return u.ID })
	store.addUnique("name", func(u *models.User) string { return u.Name })
	store.addUnique("email", func(u *models.User) string { return u.Email })
	return &MemoryUserRepository{store: store}
}

// List returns one page of users in insertion order.
func (r *MemoryUserRepository) List(_ context.Context, page, limit int) (*models.Page[models.User], error) {
	docs, total := r.store.list(page, limit)
	return models.NewPage(docs, total, page, limit), nil
}

// GetByID returns a user by its ID.
func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.store.get(id)
}

// Create adds a new user.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	return r.store.insert(user)
}

// Update modifies an existing user.
func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) (*models.User, error) {
	user.UpdatedAt = now()
	return r.store.replace(user)
}

// Delete removes a user by its ID.
func (r *MemoryUserRepository) Delete(_ context.Context, id string) (*models.User, error) {
	return r.store.remove(id)
}
