package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolda-ai/support-desk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Chat          *handlers.ChatHandler
	Tickets       *handlers.TicketsHandler
	Notifications *handlers.NotificationsHandler
	Locale        *handlers.LocaleHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	chat := app.Group("/chat")
	chat.Get("/session", cfg.Chat.Session)
	chat.Post("/language", cfg.Chat.SetLanguage)
	chat.Get("/transcript", cfg.Chat.Transcript)
	chat.Post("/messages", cfg.Chat.SubmitMessage)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/stats", cfg.Tickets.Stats)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Post("/analyze", cfg.Tickets.AnalyzeTicket)
	tickets.Post("/simulate", cfg.Tickets.Simulate)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Post("/:id/reply", cfg.Tickets.Reply)
	tickets.Post("/:id/assist", cfg.Tickets.Assist)

	app.Get("/notifications", cfg.Notifications.ListNotifications)
	app.Post("/notifications/read", cfg.Notifications.MarkAllRead)

	app.Get("/faqs", cfg.Locale.ListFAQs)
	app.Get("/labels", cfg.Locale.Labels)
}
