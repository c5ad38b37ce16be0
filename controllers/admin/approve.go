package admin

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Approve(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GAME_ID")
		}

		if err := svc.Approve(middlewares.CurrentActor(c), uint(id)); err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Game approved", nil)
	}
}

func Reject(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GAME_ID")
		}

		if err := svc.Reject(middlewares.CurrentActor(c), uint(id)); err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Game rejected", nil)
	}
}
