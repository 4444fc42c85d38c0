package requestctx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
)

const localsKey = "REQUEST_CONTEXT"

// RequestContext carries the resolved account and tenant through the request
// after the tenancy gate has passed.
type RequestContext struct {
	Account *models.User
	SalonID uint
}

// Set stores the request context in fiber locals.
func Set(c *fiber.Ctx, rc RequestContext) {
	c.Locals(localsKey, rc)
}

// Get retrieves the request context from fiber locals.
// Returns an empty context if none is set.
func Get(c *fiber.Ctx) RequestContext {
	if rc, ok := c.Locals(localsKey).(RequestContext); ok {
		return rc
	}
	return RequestContext{}
}

// Account returns the resolved account, or nil before authentication.
func Account(c *fiber.Ctx) *models.User {
	return Get(c).Account
}

// SalonID returns the tenant identifier of the current request, or 0 for
// platform accounts not acting on a specific salon.
func SalonID(c *fiber.Ctx) uint {
	return Get(c).SalonID
}
