package repositories

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/apperrors"
)

// now is stubbed in tests. BSON datetimes keep millisecond precision, so
// timestamps are truncated before they are stored.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, id)
	}
	return oid, nil
}
