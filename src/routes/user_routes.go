package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/controllers"
	"github.com/trailmates/trailmates-server/src/middleware"
)

// UserRoutes sets up profile and user search routes
func UserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/users", middleware.ProtectRoute)

	user.Get("/me", controllers.GetMe)
	user.Put("/me", controllers.UpdateMe)
	user.Get("/search", controllers.SearchUsers)
	user.Get("/:userId", controllers.GetUserProfile)
}
