package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// OrgIDHeader carries the tenant identity, attached upstream by the gateway.
	OrgIDHeader = "X-Org-ID"
	// OrgIDLocalKey is the key used to store the org ID in Fiber's context locals.
	OrgIDLocalKey = "org_id"
)

// OrgContext requires a well-formed X-Org-ID header on every request and
// stores it in context locals. Routes mounted before this middleware
// (health, metrics, swagger) are not tenant scoped.
func OrgContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(OrgIDHeader)
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "org id is required")
		}
		if _, err := uuid.Parse(id); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid org id")
		}

		c.Locals(OrgIDLocalKey, id)
		return c.Next()
	}
}

// OrgID extracts the org ID stored by OrgContext. Empty when the middleware
// did not run for this route.
func OrgID(c *fiber.Ctx) string {
	if v, ok := c.Locals(OrgIDLocalKey).(string); ok {
		return v
	}
	return ""
}
