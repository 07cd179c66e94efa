package setup

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notes-api/app"
	"notes-api/handlers"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Health and metrics
	fiberApp.Get("/ping", handlers.Ping(application))
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	notes := fiberApp.Group("/notes")
	notes.Post("/", handlers.CreateNote(application))
	notes.Get("/", handlers.ListNotes(application))
	notes.Get("/:id", handlers.GetNote(application))
	notes.Put("/:id", handlers.UpdateNote(application))
	notes.Delete("/:id", handlers.DeleteNote(application))
}
