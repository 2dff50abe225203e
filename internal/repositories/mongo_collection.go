package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// mongoCollection holds the CRUD plumbing shared by the Mongo repositories.
type mongoCollection[T any] struct {
	coll   *mongo.Collection
	entity string
	unique []string // fields backed by a unique index
}

func (c *mongoCollection[T]) list(ctx context.Context, page, limit int) ([]T, int64, error) {
	total, err := c.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %ss: %w", c.entity, err)
	}

	skip := models.Offset(page, limit)
	if skip >= total {
		return []T{}, total, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(limit))
	cur, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %ss: %w", c.entity, err)
	}
	defer cur.Close(ctx)

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode %ss: %w", c.entity, err)
	}
	return docs, total, nil
}

func (c *mongoCollection[T]) findByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s by ID %s: %w", c.entity, id, err)
	}
	return &doc, nil
}

func (c *mongoCollection[T]) insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return c.writeError("create", err)
	}
	return nil
}

func (c *mongoCollection[T]) replace(ctx context.Context, id primitive.ObjectID, doc *T) (*T, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated T
	if err := c.coll.FindOneAndReplace(ctx, bson.M{"_id": id}, doc, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, c.writeError("update", err)
	}
	return &updated, nil
}

func (c *mongoCollection[T]) deleteByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var deleted T
	if err := c.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete %s: %w", c.entity, err)
	}
	return &deleted, nil
}

// writeError turns an E11000 into a DuplicateKeyError for the colliding field.
// The field is recovered from the default index name ("<field>_1").
func (c *mongoCollection[T]) writeError(op string, err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to %s %s: %w", op, c.entity, err)
	}
	field := "_id"
	for _, f := range c.unique {
		if strings.Contains(err.Error(), "index: "+f+"_1") {
			field = f
			break
		}
	}
	return &apperrors.DuplicateKeyError{Field: field, Cause: err}
}
