package catalog

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Acquire(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GAME_ID")
		}

		game, err := svc.AcquireFree(middlewares.CurrentActor(c), uint(id))
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Game added to backlog", game)
	}
}
