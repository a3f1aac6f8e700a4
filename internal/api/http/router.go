package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/http/handlers"
	"github.com/spec-kit/eventpass/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Events         *handlers.EventsHandler
	Tickets        *handlers.TicketsHandler
	Marketing      *handlers.MarketingHandler
	Leads          *handlers.LeadsHandler
	Resolver       *handlers.ResolverHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public surface: login, lead capture, ticket PDFs and short-links.
	api := app.Group("/api")
	api.Post("/auth/login", cfg.Users.Login)
	api.Post("/leads/register", cfg.Leads.Register)
	api.Get("/event/ticket/:id/pdf", cfg.Tickets.PDF)
	app.Get("/r/:shortId", cfg.Resolver.Resolve)

	// Any authenticated operator: selling and validating.
	authed := api.Group("", cfg.AuthMiddleware.Handle)
	authed.Get("/events", cfg.Events.List)
	authed.Get("/events/:id", cfg.Events.Get)
	authed.Get("/events/:id/tickets", cfg.Tickets.ListByEvent)
	authed.Post("/event/ticket/create", cfg.Tickets.Create)
	authed.Post("/event/ticket/scan", cfg.Tickets.Scan)

	// Administration.
	admin := authed.Group("", auth.RequireAdmin())
	admin.Post("/users/create", cfg.Users.Create)
	admin.Get("/users", cfg.Users.List)
	admin.Post("/events/create", cfg.Events.Create)
	admin.Put("/events/update/:id", cfg.Events.Update)
	admin.Delete("/event/ticket/delete/:id", cfg.Tickets.Delete)
	admin.Get("/events/:id/tickets/export", cfg.Tickets.ExportCSV)
	admin.Post("/marketing/qr/create", cfg.Marketing.Create)
	admin.Get("/marketing/qrs", cfg.Marketing.List)
	admin.Get("/marketing/qr/:shortId", cfg.Marketing.Get)
	admin.Put("/marketing/qr/update/:shortId", cfg.Marketing.Update)
	admin.Delete("/marketing/qr/delete/:shortId", cfg.Marketing.Delete)
	admin.Get("/leads", cfg.Leads.List)

	RegisterPages(app)
}
