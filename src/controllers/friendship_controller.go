package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/services"
)

// GetFriendshipWith returns the relationship between the authenticated user
// and another user, in either direction. Empty list means no relationship.
func GetFriendshipWith(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	targetID := c.Params("userId")

	friendships, err := services.Friendships.GetFriendship(c.Context(), user.Id.Hex(), targetID)
	if err != nil {
		return errorResponse(c, err)
	}
	if friendships == nil {
		friendships = []models.Friendship{}
	}
	return c.Status(fiber.StatusOK).JSON(friendships)
}

// SendFriendRequest sends a friend request from the authenticated user to another user
func SendFriendRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	targetID := c.Params("userId")

	if err := services.Friendships.RequestFriendship(c.Context(), user.Id.Hex(), targetID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Friend request sent successfully"))
}

// AddFriendDirect creates an accepted friendship immediately, without the
// pending stage. Used by invite-link flows.
func AddFriendDirect(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	targetID := c.Params("userId")

	if err := services.Friendships.AddFriendship(c.Context(), user.Id.Hex(), targetID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Friend added successfully"))
}

// AcceptFriendRequest accepts a pending friend request addressed to the authenticated user
func AcceptFriendRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	friendshipID := c.Params("friendshipId")

	friendship, err := services.Friendships.GetFriendshipByID(c.Context(), friendshipID)
	if err != nil {
		return errorResponse(c, err)
	}
	if friendship == nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Friend request not found"))
	}

	// Only the recipient may accept.
	if friendship.User2 != user.Id.Hex() {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to accept this request"))
	}

	if err := services.Friendships.AcceptFriendship(c.Context(), friendshipID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Friend request accepted"))
}

// RemoveFriendship deletes a friendship the authenticated user is part of.
// The same operation covers cancelling a sent request, declining a received
// one, and unfriending.
func RemoveFriendship(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	friendshipID := c.Params("friendshipId")

	friendship, err := services.Friendships.GetFriendshipByID(c.Context(), friendshipID)
	if err != nil {
		return errorResponse(c, err)
	}
	if friendship == nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Friendship not found"))
	}

	userID := user.Id.Hex()
	if friendship.User1 != userID && friendship.User2 != userID {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to remove this friendship"))
	}

	if err := services.Friendships.RemoveFriendship(c.Context(), friendshipID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Friendship removed"))
}

// GetPendingRequests returns all pending requests involving the
// authenticated user, sent and received; senderId tells them apart.
func GetPendingRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	pending, err := services.Friendships.GetAllPendingFriendship(c.Context(), user.Id.Hex())
	if err != nil {
		return errorResponse(c, err)
	}
	if pending == nil {
		pending = []models.Friendship{}
	}
	return c.Status(fiber.StatusOK).JSON(pending)
}

// GetFriends returns the authenticated user's friends as full profiles
func GetFriends(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	limit := int64(c.QueryInt("limit", 0))

	friends, err := services.Friendships.GetFriends(c.Context(), user.Id.Hex(), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if friends == nil {
		friends = []models.User{}
	}
	return c.Status(fiber.StatusOK).JSON(friends)
}
