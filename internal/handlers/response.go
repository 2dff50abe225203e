package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/apperrors"
	"storefront/internal/logging"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// pagination reads the page and limit query parameters. Values are parsed from
// their leading integer prefix; anything unusable falls back to 1 and 10.
func pagination(c *fiber.Ctx) (page, limit int) {
	return positiveInt(c.Query("page"), defaultPage), positiveInt(c.Query("limit"), defaultLimit)
}

func positiveInt(raw string, fallback int) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseBody decodes a JSON request body into out. An empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

func badBody(c *fiber.Ctx, err error) error {
	logging.FromContext(c.UserContext()).Warn("invalid request body", "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body: " + err.Error(),
	})
}

// writeError maps an accessor failure onto the HTTP status and message the
// client sees. entity names the resource in not-found messages.
func writeError(c *fiber.Ctx, entity string, err error) error {
	log := logging.FromContext(c.UserContext())

	switch kind := apperrors.KindOf(err); kind {
	case apperrors.KindValidation:
		var dup *apperrors.DuplicateKeyError
		if errors.As(err, &dup) {
			err = dup.AsValidation(entity)
		}
		log.Info("validation failed", "entity", entity, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case apperrors.KindInvalidID:
		log.Info("invalid identifier", "entity", entity, "id", c.Params("id"))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": entity + " not found."})
	case apperrors.KindReference:
		log.Warn("unknown reference", "entity", entity, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	case apperrors.KindUnknown:
		log.Error("request failed", "entity", entity, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	default:
		log.Error("unclassified error", "entity", entity, "kind", kind.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
