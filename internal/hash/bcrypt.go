package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/okorolev/auth-server/internal/model"
)

// ErrEmptyPassword is returned when asked to hash an empty string.
var ErrEmptyPassword = errors.New("password must not be empty")

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher with the bcrypt adaptive hash.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost factor. Costs below
// bcrypt's minimum fall back to cost 10.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = 10
	}
	return &Bcrypt{cost: cost}
}

// Hash generates a salted password hash.
func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// Compare validates the given cleartext password against the stored hash.
// A mismatch reports ErrInvalidCredentials so callers never distinguish a
// wrong password from an unknown account.
func (b *Bcrypt) Compare(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return model.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
