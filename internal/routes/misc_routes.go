package routes

import (
	"github.com/gofiber/fiber/v2"

	"hualien-aid/internal/controllers"
	"hualien-aid/internal/geocode"
	"hualien-aid/internal/storage"
)

func CategoryRoutes(api fiber.Router) {
	h := &controllers.CategoryHandler{}
	api.Get("/categories", h.List)
}

func GeocodeRoutes(api fiber.Router, locator *geocode.Locator) {
	h := &controllers.GeocodeHandler{Locator: locator}
	g := api.Group("/geocode")
	g.Get("/search", h.Search)
	g.Get("/resolve", h.Resolve)
}

func StreamRoutes(api fiber.Router, hub *controllers.StreamHub) {
	api.Get("/stream", hub.Handler)
}

// StorageRoutes is public: image URLs are embedded in pages without a key.
func StorageRoutes(app *fiber.App, bucket storage.Bucket) {
	h := &controllers.StorageHandler{Bucket: bucket}
	app.Get("/storage/:bucket/*", h.Get)
}
