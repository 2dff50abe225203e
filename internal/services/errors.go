package services

import (
	"errors"

	"storefront/internal/apperrors"
)

const (
	userEntity    = "User"
	productEntity = "Product"
	orderEntity   = "Order"
)

// writeErr reports a unique-index collision as a validation failure of entity.
func writeErr(entity string, err error) error {
	var dup *apperrors.DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.AsValidation(entity)
	}
	return err
}
