package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fun2learn/fun2learn-web/internal/config"
	"github.com/fun2learn/fun2learn-web/internal/handler"
	"github.com/fun2learn/fun2learn-web/internal/middleware"
	"github.com/fun2learn/fun2learn-web/internal/observability"
	"github.com/fun2learn/fun2learn-web/internal/session"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	Sessions       session.Store
	AuthHandler    *handler.AuthHandler
	TutorHandler   *handler.TutorHandler
	PublishHandler *handler.PublishHandler
	StudentHandler *handler.StudentHandler
}

// Register wires the routes into the fiber application. The access gate runs
// ahead of every route so individual handlers never check for a session.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/healthz", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())
	app.Static("/static", "./static")

	app.Use(middleware.Gate(deps.Sessions))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(app)
	}

	if deps.TutorHandler != nil {
		tutor := app.Group("/tutor")
		deps.TutorHandler.Register(tutor)
		if deps.PublishHandler != nil {
			deps.PublishHandler.Register(tutor)
		}
	}

	if deps.StudentHandler != nil {
		student := app.Group("/student")
		deps.StudentHandler.Register(student)
	}
}
