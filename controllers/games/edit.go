package games

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Edit(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GAME_ID")
		}

		var req services.EditGameInput
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
		}

		game, err := svc.Edit(middlewares.CurrentActor(c), uint(id), req)
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Game updated successfully", game)
	}
}
