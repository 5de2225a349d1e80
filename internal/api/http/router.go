package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reagent-inventory/internal/api/http/handlers"
	"github.com/spec-kit/reagent-inventory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Reagents       *handlers.ReagentsHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Listing and single reads stay open, as in
// the original; every mutation goes through the auth middleware and the
// ownership gate inside the service.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Auth.Me)

	reagents := app.Group("/reagents")
	reagents.Get("", cfg.Reagents.List)
	reagents.Get("/stats", cfg.Reagents.Stats)
	reagents.Get("/sectors", cfg.Reagents.Sectors)
	reagents.Post("", cfg.AuthMiddleware.Handle, cfg.Reagents.Create)
	reagents.Get("/:id", cfg.Reagents.Get)
	reagents.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Reagents.Update)
	reagents.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Reagents.Delete)

	app.Get("/reports/inventory", cfg.Reports.Inventory)
}
