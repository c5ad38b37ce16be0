package catalog

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Index(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		games, currency, err := svc.Catalog(middlewares.CurrentActor(c))
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Catalog retrieved successfully", fiber.Map{
			"games":    games,
			"currency": currency,
		})
	}
}
