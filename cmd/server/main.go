package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/bloomapp/bloom-backend/internal/database"
	"github.com/bloomapp/bloom-backend/internal/handlers"
	"github.com/bloomapp/bloom-backend/internal/logging"
	"github.com/bloomapp/bloom-backend/internal/middleware"
	"github.com/bloomapp/bloom-backend/internal/modules"
	"github.com/bloomapp/bloom-backend/internal/modules/achievements"
	"github.com/bloomapp/bloom-backend/internal/modules/analytics"
	"github.com/bloomapp/bloom-backend/internal/modules/calendar"
	"github.com/bloomapp/bloom-backend/internal/modules/goals"
	"github.com/bloomapp/bloom-backend/internal/modules/habits"
	"github.com/bloomapp/bloom-backend/internal/modules/journal"
	"github.com/bloomapp/bloom-backend/internal/modules/mood"
	"github.com/bloomapp/bloom-backend/internal/modules/settings"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/bloomapp/bloom-backend/internal/modules/todos"
	"github.com/bloomapp/bloom-backend/internal/modules/vision"
	"github.com/bloomapp/bloom-backend/internal/modules/wellness"
	"github.com/bloomapp/bloom-backend/internal/routes"
	"github.com/bloomapp/bloom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Migrate shared models
	if err := database.MigrateShared(); err != nil {
		slog.Error("shared migration failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Shared services. Streaks sit underneath habits, wellness and the
	// achievement evaluator, so the one instance is built first.
	authService := services.NewAuthService(database.DB, cfg)
	streakService := streaks.NewService(database.DB)
	settingsService := settings.NewService(database.DB, cfg)
	wellnessService := wellness.NewService(database.DB, streakService, settingsService)
	achievementService := achievements.NewService(database.DB, streakService)

	featureModules := []modules.Module{
		todos.New(),
		habits.New(streakService),
		mood.New(),
		journal.New(streakService),
		goals.New(),
		calendar.New(),
		vision.New(),
		wellness.New(wellnessService),
		settings.New(settingsService),
		streaks.New(streakService),
		achievements.New(achievementService),
		analytics.New(),
	}

	// Migrate module models
	for _, m := range featureModules {
		if models := m.Models(); len(models) > 0 {
			if err := database.MigrateModels(models); err != nil {
				slog.Error("module migration failed", "module", m.Name(), "error", err)
				os.Exit(1)
			}
			slog.Info("module migrated", "module", m.Name(), "models", len(models))
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	legalHandler := handlers.NewLegalHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, authHandler, healthHandler, legalHandler, featureModules)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
