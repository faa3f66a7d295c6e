package context

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userIDKey is the locals key used to store and retrieve the authenticated
// user ID within a request.
const userIDKey = "user_id"

// Manager moves the authenticated user ID in and out of request locals, so
// handlers never reach into the transport layer's storage directly.
type Manager struct{}

// NewManager creates a new request context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserID stores the user ID in the request locals.
func (m *Manager) SetUserID(c *fiber.Ctx, userID uuid.UUID) {
	c.Locals(userIDKey, userID)
}

// GetUserID retrieves the user ID from the request locals. The second return
// reports whether an authenticated user ID was present.
func (m *Manager) GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
