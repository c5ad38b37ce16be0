package admin

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func PendingGames(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		games, err := svc.PendingGames(middlewares.CurrentActor(c))
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Pending games retrieved", games)
	}
}
