package games

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Create(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req services.CreateGameInput
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
		}

		game, err := svc.Create(middlewares.CurrentActor(c), req)
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Game created successfully", game)
	}
}
