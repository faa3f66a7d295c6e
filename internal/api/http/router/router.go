package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	httpctx "github.com/okorolev/auth-server/internal/api/http/context"
	"github.com/okorolev/auth-server/internal/api/http/handler"
	"github.com/okorolev/auth-server/internal/api/http/middleware"
	"github.com/okorolev/auth-server/internal/logger"
	"github.com/okorolev/auth-server/internal/model"
	"github.com/okorolev/auth-server/internal/service"
)

// Router wires account endpoints and middleware onto a fiber app.
type Router struct {
	accountService *service.Account
	tokenManager   model.TokenManager
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	accountService *service.Account,
	tokenManager model.TokenManager,
	contextManager *httpctx.Manager,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService: accountService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the fiber app with logging, CORS and the public and
// protected route groups.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	app.Use(logging.Handle)
	app.Use(cors.New())

	r.registerAuthRoutes(app)
	r.registerProfileRoutes(app, authenticate)

	return app
}

func (r *Router) registerAuthRoutes(app *fiber.App) {
	authHandler := handler.NewAuth(r.accountService, r.logger)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/activate-account", authHandler.ActivateAccount)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
}

func (r *Router) registerProfileRoutes(app *fiber.App, authenticate *middleware.Authenticate) {
	profileHandler := handler.NewProfile(r.accountService, r.contextManager, r.logger)

	profile := app.Group("/profile", authenticate.Handle)
	profile.Get("/", profileHandler.GetProfile)
	profile.Post("/change-password", profileHandler.ChangePassword)
}
