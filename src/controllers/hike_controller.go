package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
	"github.com/trailmates/trailmates-server/src/services"
)

// CreateHike adds a new hike to the catalog
func CreateHike(c *fiber.Ctx) error {
	var body struct {
		Name           string  `json:"name" validate:"required"`
		Region         string  `json:"region" validate:"required"`
		DistanceKm     float64 `json:"distanceKm" validate:"gte=0"`
		ElevationGainM int     `json:"elevationGainM" validate:"gte=0"`
		Difficulty     string  `json:"difficulty" validate:"required,oneof=easy moderate hard"`
		Description    string  `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
	}

	hike := &models.Hike{
		Name:           body.Name,
		Region:         body.Region,
		DistanceKm:     body.DistanceKm,
		ElevationGainM: body.ElevationGainM,
		Difficulty:     models.HikeDifficulty(body.Difficulty),
		Description:    body.Description,
	}
	id, err := services.Hikes.CreateHike(c.Context(), hike)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Hike created successfully",
		"id":      id,
	})
}

// SearchHikes lists catalog hikes filtered by region and difficulty, with
// cursor pagination via afterId
func SearchHikes(c *fiber.Ctx) error {
	filter := repository.HikeFilter{
		Region:     c.Query("region"),
		Difficulty: models.HikeDifficulty(c.Query("difficulty")),
		AfterID:    c.Query("afterId"),
		Limit:      int64(c.QueryInt("limit", 20)),
	}

	hikes, err := services.Hikes.SearchHikes(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	if hikes == nil {
		hikes = []models.Hike{}
	}
	return c.Status(fiber.StatusOK).JSON(hikes)
}

// GetHike returns a single catalog hike
func GetHike(c *fiber.Ctx) error {
	hike, err := services.Hikes.GetHike(c.Context(), c.Params("hikeId"))
	if err != nil {
		return errorResponse(c, err)
	}
	if hike == nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Hike not found"))
	}
	return c.Status(fiber.StatusOK).JSON(hike)
}

// LogHike records a completed hike for the authenticated user
func LogHike(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	hikeID := c.Params("hikeId")

	var body struct {
		CompletedAt time.Time `json:"completedAt"`
		DurationMin int       `json:"durationMin" validate:"gte=0"`
		Notes       string    `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
	}

	id, err := services.Hikes.LogHike(c.Context(), user.Id.Hex(), hikeID, body.CompletedAt, body.DurationMin, body.Notes)
	if err != nil {
		return errorResponse(c, err)
	}

	services.Feed.InvalidateSuggestions(c.Context(), user.Id.Hex())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Hike logged successfully",
		"id":      id,
	})
}

// GetMyLogs lists the authenticated user's completed hikes, newest first
func GetMyLogs(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	limit := int64(c.QueryInt("limit", 50))

	logs, err := services.Hikes.GetUserLogs(c.Context(), user.Id.Hex(), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if logs == nil {
		logs = []models.HikeLog{}
	}
	return c.Status(fiber.StatusOK).JSON(logs)
}

// ToggleWishlist bookmarks a hike for the authenticated user, or removes
// the bookmark if it already exists
func ToggleWishlist(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	hikeID := c.Params("hikeId")

	added, err := services.Hikes.ToggleWishlist(c.Context(), user.Id.Hex(), hikeID)
	if err != nil {
		return errorResponse(c, err)
	}

	services.Feed.InvalidateSuggestions(c.Context(), user.Id.Hex())

	message := "Hike removed from wishlist"
	if added {
		message = "Hike added to wishlist"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    message,
		"wishlisted": added,
	})
}

// GetWishlist lists the authenticated user's bookmarked hikes
func GetWishlist(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	hikes, err := services.Hikes.GetWishlist(c.Context(), user.Id.Hex())
	if err != nil {
		return errorResponse(c, err)
	}
	if hikes == nil {
		hikes = []models.Hike{}
	}
	return c.Status(fiber.StatusOK).JSON(hikes)
}
