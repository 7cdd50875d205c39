package routes

import (
	"github.com/gofiber/fiber/v2"

	"hualien-aid/internal/board"
	"hualien-aid/internal/controllers"
)

func LocationRoutes(api fiber.Router, sync *board.Syncer) {
	h := &controllers.LocationHandler{Sync: sync}

	locations := api.Group("/locations")

	// GET /api/locations?categories=醫療,交通
	// GET /api/locations?q=飲用水  (search ignores categories)
	locations.Get("/", h.List)
	locations.Get("/all", h.All)
	locations.Get("/completed", h.Completed)
	locations.Get("/geojson", h.GeoJSON)
	locations.Post("/", h.Create)

	locations.Get("/:id", h.Get)
	locations.Get("/:id/navigate", h.Navigate)
	locations.Patch("/:id/status", h.SetStatus)
	locations.Post("/:id/supplies", h.AddSupply)
	locations.Delete("/:id/supplies/:index", h.RemoveSupply)
	locations.Post("/:id/messages", h.AddMessage)
	locations.Post("/:id/images", h.AddImages)
	locations.Delete("/:id/images/:index", h.RemoveImage)
	locations.Delete("/:id", h.Delete)
}
