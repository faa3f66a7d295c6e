package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users. Mutations are explicit
// single-record commands so the atomic-write contract is visible at the call
// site instead of hidden in object state.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByActivationToken(ctx context.Context, token string) (User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (User, error)
	Activate(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// User represents a stored user with authentication material.
type User struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PasswordHash     string
	Activated        bool
	ActivationToken  *string
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Profile is the externally visible projection of a user. Credential and
// token material never appears here.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile projects the user onto its public fields.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Activated: u.Activated,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
