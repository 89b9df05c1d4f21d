package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/controllers"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)
}
