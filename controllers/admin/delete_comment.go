package admin

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func DeleteComment(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_COMMENT_ID")
		}

		if err := svc.DeleteComment(middlewares.CurrentActor(c), uint(id)); err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Comment deleted", nil)
	}
}
