package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/car-rental-service/internal/api/http/handlers"
	"github.com/spec-kit/car-rental-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/signup", cfg.Auth.Signup)
	api.Post("/login", cfg.Auth.Login)
	api.Post("/book", cfg.Bookings.Book)
	api.Post("/verify-otp", cfg.Bookings.VerifyOtp)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/me", cfg.Auth.Me)
}
