package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/services"
)

// GetMe returns the authenticated user's own profile
func GetMe(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUserProfile returns another user's public profile
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")

	user, err := services.Users.GetUser(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateMe updates the authenticated user's editable profile fields
func UpdateMe(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		Name           string `json:"name"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		FavoriteRegion string `json:"favorite_region"`
		ProfilePicture string `json:"profile_picture"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	updated, err := services.Users.UpdateProfile(c.Context(), user.Id.Hex(), models.User{
		Name:           body.Name,
		Bio:            body.Bio,
		Location:       body.Location,
		FavoriteRegion: body.FavoriteRegion,
		ProfilePicture: body.ProfilePicture,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

// SearchUsers finds users by name or username prefix
func SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	limit := int64(c.QueryInt("limit", 20))

	users, err := services.Users.Search(c.Context(), query, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if users == nil {
		users = []models.UserDto{}
	}
	return c.Status(fiber.StatusOK).JSON(users)
}
