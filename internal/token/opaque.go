package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/okorolev/auth-server/internal/model"
)

// DefaultOpaqueSize is the number of random bytes in an activation or reset
// token. 32 bytes hex-encode to 64 characters, enough that collisions are
// negligible at any realistic table size; the store's uniqueness constraint
// is the backstop.
const DefaultOpaqueSize = 32

// Opaque generates single-use capability tokens from a cryptographically
// secure random source.
type Opaque struct {
	size int
}

// NewOpaque creates an Opaque generator producing tokens of size random bytes.
func NewOpaque(size int) model.TokenGenerator {
	if size <= 0 {
		size = DefaultOpaqueSize
	}
	return &Opaque{size: size}
}

// Generate returns a hex-encoded random token.
func (o *Opaque) Generate() (string, error) {
	b := make([]byte, o.size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
