package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/controllers"
	"github.com/trailmates/trailmates-server/src/middleware"
)

// FriendshipRoutes sets up routes for sending, accepting and removing
// friend requests, listing pending requests, and fetching the friend list
func FriendshipRoutes(app *fiber.App) {
	friendship := app.Group("/api/v1/friendships", middleware.ProtectRoute)

	friendship.Get("/with/:userId", controllers.GetFriendshipWith)
	friendship.Post("/request/:userId", controllers.SendFriendRequest)
	friendship.Post("/direct/:userId", controllers.AddFriendDirect)
	friendship.Put("/accept/:friendshipId", controllers.AcceptFriendRequest)
	friendship.Delete("/:friendshipId", controllers.RemoveFriendship)
	friendship.Get("/pending", controllers.GetPendingRequests)
	friendship.Get("/friends", controllers.GetFriends)
}
