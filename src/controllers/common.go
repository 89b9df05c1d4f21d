package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/services"
)

var validate = validator.New()

// errorResponse maps the service error taxonomy onto HTTP statuses.
// Store-level failures are logged here and surfaced as a generic 500.
func errorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(validationErr.Message))
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(notFoundErr.Message))
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(lib.MessageResponse(conflictErr.Message))
	default:
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
}
