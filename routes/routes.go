package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/e-Xiua/admin-events-api/config"
	"github.com/e-Xiua/admin-events-api/controllers"
	"github.com/e-Xiua/admin-events-api/middleware"
)

func Setup(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	// EVENTS
	events := api.Group("/events", middleware.JWTProtected())
	if cfg.Security.ProtectAll {
		// Deployment policy: gate every operation, not just delete.
		events.Use(controllers.RequireRole)
	}
	events.Get("/", controllers.GetAllEvents)
	events.Get("/:id", controllers.GetEventByID)
	events.Post("/", controllers.CreateEvent)
	events.Put("/", controllers.ReplaceEvent)
	events.Patch("/:id", controllers.PatchEvent)
	events.Delete("/:id", controllers.RequireRole, controllers.DeleteEvent)
}
