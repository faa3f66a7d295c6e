package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	httpctx "github.com/okorolev/auth-server/internal/api/http/context"
	"github.com/okorolev/auth-server/internal/logger"
	"github.com/okorolev/auth-server/internal/model"
)

// Authenticate validates bearer tokens and injects the user ID into request
// locals before protected handlers run.
type Authenticate struct {
	tokens model.TokenManager
	ctx    *httpctx.Manager
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.TokenManager, ctx *httpctx.Manager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, ctx: ctx, logger: logger}
}

// Handle parses the Authorization header, validates the session token and
// stores the resolved user ID. Missing or invalid tokens stop the request
// with 401 before any service logic runs.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required."})
	}

	userID, err := m.tokens.ParseSessionToken(tokenString)
	if err != nil || userID == uuid.Nil {
		m.logger.Debug("Authenticate middleware: rejected token")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired session."})
	}

	m.ctx.SetUserID(c, userID)

	return c.Next()
}
