package helpers

import (
	"errors"

	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// ServiceError maps a service error onto the wire. Every domain failure is
// answered here; nothing propagates as a process failure.
func ServiceError(c *fiber.Ctx, err error) error {
	var v *services.ValidationError
	switch {
	case errors.As(err, &v):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "VALIDATION_FAILED",
			"data":    fiber.Map{"fields": v.Fields},
		})
	case errors.Is(err, services.ErrNotFound):
		return JSONError(c, fiber.StatusNotFound, "NOT_FOUND")
	case errors.Is(err, services.ErrForbidden):
		return JSONError(c, fiber.StatusForbidden, "FORBIDDEN")
	case errors.Is(err, services.ErrConflict):
		return JSONError(c, fiber.StatusConflict, "DUPLICATE_GAME")
	case errors.Is(err, services.ErrInsufficientFunds):
		return JSONError(c, fiber.StatusPaymentRequired, "INSUFFICIENT_FUNDS")
	default:
		return JSONError(c, fiber.StatusBadRequest, "REQUEST_FAILED")
	}
}
