package routes

import (
	"backlog/controllers/admin"
	"backlog/controllers/catalog"
	"backlog/controllers/games"
	"backlog/middlewares"
	"backlog/services"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, svc *services.Service) {
	gameroutes := app.Group("/games", middlewares.UserAuthMiddleware)
	gameroutes.Get("/", games.Index(svc))
	gameroutes.Post("/", games.Create(svc))
	// Registered before /:id so "stats" is not read as a game id.
	gameroutes.Get("/stats", games.Stats(svc))
	gameroutes.Get("/:id", games.Details(svc))
	gameroutes.Put("/:id", games.Edit(svc))
	gameroutes.Delete("/:id", games.Delete(svc))
	gameroutes.Post("/:id/play", games.Play(svc))
	gameroutes.Post("/:id/comments", games.AddComment(svc))

	catalogroutes := app.Group("/catalog", middlewares.UserAuthMiddleware)
	catalogroutes.Get("/", catalog.Index(svc))
	catalogroutes.Post("/:id/acquire", catalog.Acquire(svc))
	catalogroutes.Post("/:id/buy", catalog.Buy(svc))

	adminroutes := app.Group("/admin", middlewares.UserAuthMiddleware, middlewares.AdminOnly)
	adminroutes.Get("/pending", admin.PendingGames(svc))
	adminroutes.Post("/games/:id/approve", admin.Approve(svc))
	adminroutes.Post("/games/:id/reject", admin.Reject(svc))
	adminroutes.Get("/stats", admin.Stats(svc))
	adminroutes.Delete("/comments/:id", admin.DeleteComment(svc))
}
