// Package apperrors defines the closed set of failures the storefront accessors
// return and the classification handlers use to pick an HTTP status.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidID is returned when an identifier is not a valid ObjectId.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrProductNotFound is returned when an order references a product that does not exist.
	ErrProductNotFound = errors.New("Product not found.")
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidID
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidID:
		return "invalid_id"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Violation is a single failed field constraint.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError reports every violated constraint of one entity.
type ValidationError struct {
	Entity     string
	Violations []Violation
}

// NewValidationError builds a ValidationError for entity.
func NewValidationError(entity string, violations ...Violation) *ValidationError {
	return &ValidationError{Entity: entity, Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Path+": "+v.Message)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(parts, ", "))
}

// DuplicateKeyError is returned by repositories when a unique field collides.
type DuplicateKeyError struct {
	Field string
	Cause error
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("duplicate value for %s: %v", e.Field, e.Cause)
	}
	return "duplicate value for " + e.Field
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Cause
}

// AsValidation converts a duplicate key into the validation error reported to clients.
func (e *DuplicateKeyError) AsValidation(entity string) *ValidationError {
	return NewValidationError(entity, Violation{
		Path:    e.Field,
		Message: capitalize(e.Field) + " already exists.",
	})
}

// KindOf returns the classification of err. Duplicate keys that escaped the
// accessor layer are still validation failures.
func KindOf(err error) Kind {
	var ve *ValidationError
	var dup *DuplicateKeyError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &ve), errors.As(err, &dup):
		return KindValidation
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	case errors.Is(err, ErrProductNotFound):
		return KindReference
	default:
		return KindUnknown
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
