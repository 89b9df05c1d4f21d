package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/services"
)

// GetFeed returns recent hike activity from the authenticated user's friends
func GetFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	limit := int64(c.QueryInt("limit", 20))

	items, err := services.Feed.ActivityFeed(c.Context(), user.Id.Hex(), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if items == nil {
		items = []services.FeedItem{}
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// GetSuggestedHikes returns catalog hikes the authenticated user has not
// logged or wishlisted yet
func GetSuggestedHikes(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	limit := int64(c.QueryInt("limit", 10))

	hikes, err := services.Feed.SuggestedHikes(c.Context(), user.Id.Hex(), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if hikes == nil {
		hikes = []models.Hike{}
	}
	return c.Status(fiber.StatusOK).JSON(hikes)
}
