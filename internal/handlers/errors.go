package handlers

import (
	"github.com/gofiber/fiber/v2"

	"capstone-service/internal/apperrors"
)

// respondError maps a core error to its HTTP status and renders the shared
// error payload.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = fiber.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = fiber.StatusNotFound
	case apperrors.IsConflict(err):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
