package model

import "github.com/google/uuid"

// TokenManager issues and validates stateless session tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID) (string, error)
	ParseSessionToken(token string) (uuid.UUID, error)
}

// TokenGenerator produces opaque single-use capability tokens for account
// activation and password reset links.
type TokenGenerator interface {
	Generate() (string, error)
}
