package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/services"
)

// Signup handles user registration and returns the new user with a token
func Signup(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name" validate:"required"`
		Username string `json:"username" validate:"required,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
	}

	user, token, err := services.Users.Register(c.Context(), body.Name, body.Username, body.Email, body.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

// Login authenticates a user by username and password and returns a token
func Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
	}

	user, token, err := services.Users.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
