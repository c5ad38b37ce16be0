package games

import (
	"backlog/helpers"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

type AddCommentRequest struct {
	Content string `json:"content"`
}

func AddComment(svc *services.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_GAME_ID")
		}

		var req AddCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
		}

		comment, err := svc.AddComment(middlewares.CurrentActor(c), uint(id), req.Content)
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		return helpers.JSONSuccess(c, "Comment added", comment)
	}
}
