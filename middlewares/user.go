package middlewares

import (
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

// Identity is resolved upstream (login, sessions, role assignment live in
// the identity provider); this service trusts the forwarded headers.
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

func UserAuthMiddleware(c *fiber.Ctx) error {
	userID := c.Get(HeaderUserID)
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "USER_ID_REQUIRED",
			"data":    nil,
		})
	}

	c.Locals("actor", services.Actor{
		UserID: userID,
		Admin:  c.Get(HeaderRole) == "Admin",
	})
	return c.Next()
}

func AdminOnly(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(services.Actor)
	if !ok || !actor.Admin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "ADMIN_ONLY",
			"data":    nil,
		})
	}
	return c.Next()
}

// CurrentActor pulls the actor placed in Locals by UserAuthMiddleware.
func CurrentActor(c *fiber.Ctx) services.Actor {
	actor, _ := c.Locals("actor").(services.Actor)
	return actor
}
