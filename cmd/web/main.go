package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fun2learn/fun2learn-web/internal/backend"
	"github.com/fun2learn/fun2learn-web/internal/config"
	"github.com/fun2learn/fun2learn-web/internal/forms"
	"github.com/fun2learn/fun2learn-web/internal/handler"
	"github.com/fun2learn/fun2learn-web/internal/middleware"
	"github.com/fun2learn/fun2learn-web/internal/router"
	"github.com/fun2learn/fun2learn-web/internal/session"
	"github.com/fun2learn/fun2learn-web/internal/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	sessions := session.NewCookieStore(cfg.SessionCookieName, cfg.CookieSecure)
	client := backend.New(cfg, logger)
	validate := forms.NewValidator()

	authHandler := handler.NewAuthHandler(client, sessions, validate, logger)
	tutorHandler := handler.NewTutorHandler(client, client, sessions, logger)
	publishHandler := handler.NewPublishHandler(client, client, sessions, logger)
	studentHandler := handler.NewStudentHandler(client, sessions, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		Views:        views.NewEngine(),
		ViewsLayout:  "layouts/main",
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		Sessions:       sessions,
		AuthHandler:    authHandler,
		TutorHandler:   tutorHandler,
		PublishHandler: publishHandler,
		StudentHandler: studentHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
