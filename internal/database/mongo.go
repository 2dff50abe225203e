// Package database owns the MongoDB client lifecycle and schema indexes.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	OrdersCollection   = "orders"

	connectTimeout = 10 * time.Second
)

// Mongo is the single shared client plus the storefront database handle.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials uri and verifies the deployment answers a ping.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &Mongo{Client: client, DB: client.Database(dbName)}, nil
}

// Users returns the users collection.
func (m *Mongo) Users() *mongo.Collection { return m.DB.Collection(UsersCollection) }

// Products returns the products collection.
func (m *Mongo) Products() *mongo.Collection { return m.DB.Collection(ProductsCollection) }

// Orders returns the orders collection.
func (m *Mongo) Orders() *mongo.Collection { return m.DB.Collection(OrdersCollection) }

// Ping reports whether the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// UniqueIndexes lists the unique single-field indexes per collection. The
// repositories rely on the default "<field>_1" index names.
var UniqueIndexes = map[string][]string{
	UsersCollection:    {"name", "email"},
	ProductsCollection: {"name"},
}

// EnsureIndexes creates the unique indexes. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var created []string
	for coll, fields := range UniqueIndexes {
		models := make([]mongo.IndexModel, 0, len(fields))
		for _, field := range fields {
			models = append(models, mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true),
			})
		}
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return created, fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
		for _, name := range names {
			created = append(created, coll+"."+name)
		}
	}
	return created, nil
}
