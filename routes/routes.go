package routes

import (
	"github.com/gofiber/fiber/v2"

	"salesdash-backend/controllers"
)

// Register wires all HTTP routes.
func Register(app *fiber.App, h *controllers.Handler) {
	app.Get("/health", h.Health)

	// Webhook ingestion (always 200, see controllers)
	app.Post("/ghl-call", h.ReceiveCall)
	app.Post("/eoc-created", h.ReceiveEoc)
	app.Post("/booked-call-created", h.ReceiveBookedCall)

	// Dashboard reads
	app.Get("/calls", h.GetCalls)
	app.Get("/eocs", h.GetEocs)
	app.Get("/booked-calls", h.GetBookedCalls)
	app.Get("/stats", h.GetStats)
	app.Delete("/calls/:id", h.DeleteCall)
}
