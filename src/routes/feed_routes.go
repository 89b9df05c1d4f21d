package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/controllers"
	"github.com/trailmates/trailmates-server/src/middleware"
)

// FeedRoutes sets up the activity feed and hike suggestion routes
func FeedRoutes(app *fiber.App) {
	feed := app.Group("/api/v1/feed", middleware.ProtectRoute)

	feed.Get("/", controllers.GetFeed)
	feed.Get("/suggested", controllers.GetSuggestedHikes)
}
