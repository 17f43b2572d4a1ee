package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/http/handlers"
	"github.com/spec-kit/grievance-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Grievances     *handlers.GrievancesHandler
	Chat           *handlers.ChatHandler
	Ratings        *handlers.RatingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api")
	grievances := api.Group("/grievances")
	grievances.Post("/", cfg.Grievances.Create)
	grievances.Get("/", cfg.Grievances.List)
	grievances.Get("/mobile/:mobileNumber", cfg.Grievances.ListByMobile)
	grievances.Get("/ticket/:ticket", cfg.Grievances.GetByTicket)
	grievances.Put("/:id/status", cfg.AuthMiddleware.Handle, cfg.Grievances.UpdateStatus)

	app.Post("/query/", cfg.Chat.Query)
	app.Post("/ticket/status/", cfg.Chat.TicketStatus)
	app.Get("/suggestions/", cfg.Chat.Suggestions)
	app.Get("/languages/", cfg.Chat.Languages)

	app.Post("/rating/", cfg.Ratings.Submit)
	app.Get("/ratings/stats", cfg.Ratings.Stats)
	app.Get("/ratings/export", cfg.Ratings.Export)
}
