package games

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/models"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Index(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middlewares.CurrentActor(c)

		filters := services.ListFilters{
			Search:     c.Query("search"),
			PlatformID: uint(c.QueryInt("platform_id")),
			GenreID:    uint(c.QueryInt("genre_id")),
			Status:     models.GameStatus(c.Query("status")),
			Sort:       c.Query("sort"),
		}
		page := c.QueryInt("page", 1)

		list, totalPages, err := svc.List(actor, filters, page)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		return helpers.JSONSuccess(c, "Backlog retrieved successfully", fiber.Map{
			"games":       list,
			"page":        page,
			"total_pages": totalPages,
		})
	}
}
