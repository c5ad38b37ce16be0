package games

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Stats(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.UserStats(middlewares.CurrentActor(c))
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Stats retrieved successfully", stats)
	}
}
