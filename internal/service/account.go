package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okorolev/auth-server/internal/logger"
	"github.com/okorolev/auth-server/internal/model"
)

// resetTokenTTL bounds how long a password reset link stays usable.
const resetTokenTTL = time.Hour

// Account orchestrates the credential and token lifecycle: registration with
// email activation, login, password change and the forgot/reset flow. It is
// the only component holding state-machine logic; everything it calls is a
// thin primitive.
type Account struct {
	users     model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenGenerator
	sessions  model.TokenManager
	mailer    model.Mailer
	clientURL string
	logger    *logger.Logger
}

// NewAccount creates the account lifecycle service.
func NewAccount(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenGenerator,
	sessions model.TokenManager,
	mailer model.Mailer,
	clientURL string,
	logger *logger.Logger,
) *Account {
	return &Account{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		sessions:  sessions,
		mailer:    mailer,
		clientURL: clientURL,
		logger:    logger,
	}
}

// Register creates an unactivated user and emails an activation link.
// The record is persisted before the mail goes out: a delivery failure
// surfaces as an error but does not roll the insert back, leaving an
// unactivated account that can only be recovered out of band.
func (a *Account) Register(ctx context.Context, name, email, password string) error {
	a.logger.Debug("Account service: registering user", "email", email)

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	activationToken, err := a.tokens.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate activation token: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:              uuid.New(),
		Name:            name,
		Email:           email,
		PasswordHash:    passwordHash,
		Activated:       false,
		ActivationToken: &activationToken,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := a.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			a.logger.Info("Account service: registration rejected, email taken", "email", email)
			return model.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	link := fmt.Sprintf("%s/activate-account?token=%s", a.clientURL, activationToken)
	body := fmt.Sprintf(`Click <a href="%s">here</a> to activate your account.`, link)
	if err := a.mailer.Send(ctx, email, "Account Activation", body); err != nil {
		a.logger.Error("Account service: failed to send activation email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send activation email: %w", err)
	}

	a.logger.Info("Account service: user registered", "email", email)

	return nil
}

// Activate consumes an activation token. Unknown, already consumed and never
// issued tokens are indistinguishable to the caller.
func (a *Account) Activate(ctx context.Context, token string) error {
	user, err := a.users.GetByActivationToken(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrInvalidToken
		}
		return fmt.Errorf("failed to get user by activation token: %w", err)
	}

	if err := a.users.Activate(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	a.logger.Info("Account service: account activated", "email", user.Email)

	return nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password produce the same error; an unactivated account is
// reported as such, which deliberately reveals the account exists.
func (a *Account) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	// Branch on the activated flag, never on token presence.
	if !user.Activated {
		return "", model.ErrNotActivated
	}

	if err := a.hasher.Compare(password, user.PasswordHash); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to compare password: %w", err)
	}

	sessionToken, err := a.sessions.GenerateSessionToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Account service: user logged in", "email", email)

	return sessionToken, nil
}

// GetProfile returns the public projection of a user.
func (a *Account) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Profile(), nil
}

// ChangePassword replaces the credential of an authenticated user. The
// confirmation check runs before any store access so a mismatch never
// touches the record.
func (a *Account) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return model.ErrPasswordMismatch
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := a.hasher.Compare(oldPassword, user.PasswordHash); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return model.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}

	passwordHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Account service: password changed", "user_id", userID)

	return nil
}

// ForgotPassword starts the reset flow. It reports success whether or not
// the email resolves to an account, so callers cannot enumerate addresses.
// A repeated request overwrites any earlier unconsumed reset token.
func (a *Account) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Debug("Account service: reset requested for unknown email", "email", email)
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := a.tokens.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := a.users.SetResetToken(ctx, user.ID, resetToken, time.Now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", a.clientURL, resetToken)
	body := fmt.Sprintf(`Click <a href="%s">here</a> to reset your password.`, link)
	if err := a.mailer.Send(ctx, email, "Password Reset", body); err != nil {
		a.logger.Error("Account service: failed to send reset email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	a.logger.Info("Account service: reset email sent", "email", email)

	return nil
}

// ResetPassword consumes a reset token and replaces the credential. The
// token and its expiry are cleared together so a second attempt fails.
func (a *Account) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return model.ErrPasswordMismatch
	}

	user, err := a.users.GetByResetToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrInvalidToken
		}
		return fmt.Errorf("failed to get user by reset token: %w", err)
	}

	passwordHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.ResetPassword(ctx, user.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	a.logger.Info("Account service: password reset", "email", user.Email)

	return nil
}
