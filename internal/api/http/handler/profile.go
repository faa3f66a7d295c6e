package handler

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	httpctx "github.com/okorolev/auth-server/internal/api/http/context"
	"github.com/okorolev/auth-server/internal/logger"
	"github.com/okorolev/auth-server/internal/model"
)

// ProfileService defines the authenticated account operations.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmPassword string) error
}

// Profile handles the authenticated endpoints. The bearer middleware has
// already resolved the user ID by the time these run.
type Profile struct {
	accounts ProfileService
	ctx      *httpctx.Manager
	logger   *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(accounts ProfileService, ctx *httpctx.Manager, logger *logger.Logger) *Profile {
	return &Profile{accounts: accounts, ctx: ctx, logger: logger}
}

// GetProfile returns the authenticated user's public record.
func (h *Profile) GetProfile(c *fiber.Ctx) error {
	userID, ok := h.ctx.GetUserID(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authorization required.")
	}

	profile, err := h.accounts.GetProfile(c.Context(), userID)
	if err != nil {
		h.logger.Error("Profile handler: profile fetch failed",
			"user_id", userID,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": profile})
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r changePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

// ChangePassword replaces the authenticated user's credential.
func (h *Profile) ChangePassword(c *fiber.Ctx) error {
	userID, ok := h.ctx.GetUserID(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authorization required.")
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.accounts.ChangePassword(c.Context(), userID, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		h.logger.Error("Profile handler: password change failed",
			"user_id", userID,
			"error", err.Error())
		// A failed old-password check reads differently here than at login.
		if errors.Is(err, model.ErrInvalidCredentials) {
			return respondError(c, fiber.StatusUnauthorized, "Old password is incorrect.")
		}
		return handleError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Password changed successfully.")
}
