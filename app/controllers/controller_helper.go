package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// jsonError writes the standard error envelope: a machine-distinguishable
// kind plus a human-readable message.
func jsonError(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   kind,
		"message": message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusNotFound, "not_found", message)
}

func validationFailed(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", message)
}

func internalError(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", message)
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(v), err
}

func queryInt(c *fiber.Ctx, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// validDate reports whether s is a "2006-01-02" calendar day.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
