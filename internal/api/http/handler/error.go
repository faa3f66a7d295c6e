package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/okorolev/auth-server/internal/model"
)

// genericErrorMessage is the only detail internal failures ever leak.
const genericErrorMessage = "Something went wrong. Please try again later."

// handleError maps domain failures onto transport status codes with safe
// messages. Anything unmapped is an internal error; its detail stays in the
// logs.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		return respondError(c, fiber.StatusConflict, "Email is already registered.")
	case errors.Is(err, model.ErrInvalidToken):
		return respondError(c, fiber.StatusBadRequest, "Invalid or expired token.")
	case errors.Is(err, model.ErrPasswordMismatch):
		return respondError(c, fiber.StatusBadRequest, "New passwords do not match.")
	case errors.Is(err, model.ErrInvalidCredentials):
		return respondError(c, fiber.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, model.ErrNotActivated):
		return respondError(c, fiber.StatusUnauthorized, "Account is not activated.")
	case errors.Is(err, model.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "User not found.")
	default:
		return respondError(c, fiber.StatusInternalServerError, genericErrorMessage)
	}
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
