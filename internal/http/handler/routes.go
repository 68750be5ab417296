package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"advocates/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when advocates are served from memory.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.AdvocateService, log *zap.Logger) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/advocates", ListAdvocates(svc, log))
}
