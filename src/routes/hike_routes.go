package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/controllers"
	"github.com/trailmates/trailmates-server/src/middleware"
)

// HikeRoutes sets up catalog, hike log and wishlist routes
func HikeRoutes(app *fiber.App) {
	hike := app.Group("/api/v1/hikes", middleware.ProtectRoute)

	hike.Post("/", controllers.CreateHike)
	hike.Get("/", controllers.SearchHikes)
	hike.Get("/logs/me", controllers.GetMyLogs)
	hike.Get("/wishlist", controllers.GetWishlist)
	hike.Get("/:hikeId", controllers.GetHike)
	hike.Post("/:hikeId/log", controllers.LogHike)
	hike.Post("/:hikeId/wishlist", controllers.ToggleWishlist)
}
