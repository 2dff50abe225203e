// Package validation composes per-field predicates into entity validators that
// report every violated constraint at once.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/apperrors"
)

var (
	personNameRe  = regexp.MustCompile(`^[A-Za-záéíóúÁÉÍÓÚñÑ\s]+$`)
	productNameRe = regexp.MustCompile(`^[A-Za-záéíóúÁÉÍÓÚñÑ\s-]+$`)
	plainTextRe   = regexp.MustCompile(`^[A-Za-záéíóúÁÉÍÓÚñÑ\s]+$`)
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	passwordCharsetRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,32}$`)
	passwordClassRes  = []*regexp.Regexp{
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[A-Z]`),
		regexp.MustCompile(`\d`),
		regexp.MustCompile(`[@$!%*?&]`),
	}
)

// rule is a named field predicate and the message reported when it fails.
type rule struct {
	check   func(string) bool
	message string
}

var rules = map[string]rule{
	"personname": {
		check:   personNameRe.MatchString,
		message: "Name should only contain letters and spaces.",
	},
	"productname": {
		check:   productNameRe.MatchString,
		message: "Name should only contain letters, spaces and dashes.",
	},
	"plaintext": {
		check:   plainTextRe.MatchString,
		message: "Description should only contain letters and spaces.",
	},
	"emailaddr": {
		check:   emailRe.MatchString,
		message: "Invalid email format.",
	},
	"strongpassword": {
		check:   IsStrongPassword,
		message: "Password must be 8-32 characters long, contain at least one lowercase letter, one uppercase letter, one number, and one special character.",
	},
	"objectid": {
		check: primitive.IsValidObjectID,
	},
}

// IsStrongPassword reports whether s is 8-32 characters from the allowed set and
// contains a lowercase letter, an uppercase letter, a digit and a special character.
func IsStrongPassword(s string) bool {
	if !passwordCharsetRe.MatchString(s) {
		return false
	}
	for _, re := range passwordClassRes {
		if !re.MatchString(s) {
			return false
		}
	}
	return true
}

// maxSafeInteger is the largest integer a JSON number carries without loss.
const maxSafeInteger = 1<<53 - 1

// IsWholeNumber reports whether f is an integer within the exactly
// representable range.
func IsWholeNumber(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger
}

// Validator checks entity field sets.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the storefront field rules registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, r := range rules {
		check := r.check
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}
	if err := v.RegisterValidation("wholenumber", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			return IsWholeNumber(fl.Field().Float())
		}
		return true
	}); err != nil {
		panic(fmt.Sprintf("validation: register wholenumber: %v", err))
	}
	return &Validator{validate: v}
}

// Check validates s and returns a *apperrors.ValidationError naming entity when any
// constraint fails. Fields listed in except (Go field names) are skipped.
func (v *Validator) Check(entity string, s any, except ...string) error {
	var err error
	if len(except) > 0 {
		err = v.validate.StructExcept(s, except...)
	} else {
		err = v.validate.Struct(s)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %s: %w", entity, err)
	}
	violations := make([]apperrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		violations = append(violations, apperrors.Violation{Path: path, Message: message(fe, path)})
	}
	return apperrors.NewValidationError(entity, violations...)
}

// fieldPath turns "OrderFields.items[0].quantity" into "items.0.quantity".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	return strings.NewReplacer("[", ".", "]", "").Replace(namespace)
}

func message(fe validator.FieldError, path string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", path)
	case "gte", "min":
		return fmt.Sprintf("Path `%s` (%v) is less than minimum allowed value (%s).", path, fe.Value(), fe.Param())
	case "wholenumber":
		return fmt.Sprintf("Path `%s` (%v) is not an integer.", path, fe.Value())
	case "objectid":
		return fmt.Sprintf("Cast to ObjectId failed for value %q at path %q.", fe.Value(), path)
	}
	if r, ok := rules[fe.Tag()]; ok && r.message != "" {
		return r.message
	}
	return fmt.Sprintf("Path `%s` is invalid.", path)
}
