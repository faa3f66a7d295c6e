package handler

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okorolev/auth-server/internal/logger"
)

// AccountService defines the lifecycle operations the HTTP boundary maps
// requests onto.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) error
	Activate(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmPassword string) error
}

// Auth handles the unauthenticated account endpoints.
type Auth struct {
	accounts AccountService
	logger   *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(accounts AccountService, logger *logger.Logger) *Auth {
	return &Auth{accounts: accounts, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// Register creates an unactivated account and triggers the activation email.
func (h *Auth) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.accounts.Register(c.Context(), req.Name, req.Email, req.Password); err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated,
		"Registration successful, please check your email to activate your account.")
}

type activateRequest struct {
	Token string `json:"token"`
}

func (r activateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)
}

// ActivateAccount consumes an activation token.
func (h *Auth) ActivateAccount(c *fiber.Ctx) error {
	var req activateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.accounts.Activate(c.Context(), req.Token); err != nil {
		h.logger.Error("Auth handler: activation failed", "error", err.Error())
		return handleError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Account activated successfully.")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// Login verifies credentials and returns a bearer session token.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r forgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// ForgotPassword starts a password reset. The response is identical whether
// or not the address belongs to an account.
func (h *Auth) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.accounts.ForgotPassword(c.Context(), req.Email); err != nil {
		h.logger.Error("Auth handler: forgot password failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "If the email exists, a reset password link has been sent.")
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r resetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.NewPassword, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

// ResetPassword consumes a reset token and replaces the credential.
func (h *Auth) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.accounts.ResetPassword(c.Context(), req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
		h.logger.Error("Auth handler: password reset failed", "error", err.Error())
		return handleError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Password reset successfully.")
}
