package routes

import (
	"github.com/gofiber/fiber/v2"

	"hualien-aid/internal/board"
	"hualien-aid/internal/controllers"
)

func ChannelRoutes(api fiber.Router, sync *board.Syncer) {
	h := &controllers.ChannelHandler{Sync: sync}

	channels := api.Group("/channels")

	// GET /api/channels?type=求助&status=全部
	channels.Get("/", h.List)
	channels.Post("/", h.Create)
	channels.Get("/:id", h.Get)
	channels.Patch("/:id/status", h.SetStatus)
	channels.Delete("/:id", h.Delete)
}
