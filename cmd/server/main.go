package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/redis/go-redis/v9"

	"github.com/ardentiaonline/portal-gateway/internal/audit"
	"github.com/ardentiaonline/portal-gateway/internal/config"
	"github.com/ardentiaonline/portal-gateway/internal/database"
	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/handlers"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/logging"
	"github.com/ardentiaonline/portal-gateway/internal/middleware"
	"github.com/ardentiaonline/portal-gateway/internal/routes"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/session"
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
	sessionKey, err := cfg.SessionKey()
	if err != nil || len(sessionKey) != 32 {
		slog.Error("SESSION_KEY must be 64 hex characters (32 bytes)")
		os.Exit(1)
	}

	// Message catalogs
	loc, err := localization.New(cfg.LocalesPath)
	if err != nil {
		slog.Error("failed to load locales", "path", cfg.LocalesPath, "error", err)
		os.Exit(1)
	}

	// Database (system logs + audit trail only)
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Redis session store
	redisDB, _ := strconv.Atoi(cfg.RedisDB)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})
	sessionStore, err := session.New(rdb, sessionKey, cfg.SessionTTL, cfg.PersistentSessionTTL)
	if err != nil {
		slog.Error("session store init failed", "error", err)
		os.Exit(1)
	}

	// DB log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Retention cleanup
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Upstream game API
	api := gameapi.NewClient(cfg.GameAPIBaseURL, cfg.GameAPITimeout)

	// Services
	auditRecorder := audit.NewRecorder(database.DB)
	sessionService := services.NewSessionService(api, sessionStore, cfg)
	boardService := services.NewBoardService(api)
	reportService := services.NewReportService(api)
	penaltyService := services.NewPenaltyService(api)
	moderationService := services.NewModerationService(api, auditRecorder)
	appealService := services.NewAppealService(api, auditRecorder)

	// Handlers
	sessionHandler := handlers.NewSessionHandler(sessionService, loc)
	healthHandler := handlers.NewHealthHandler(api, sessionStore)
	boardHandler := handlers.NewBoardHandler(boardService, loc)
	reportHandler := handlers.NewReportHandler(reportService, loc)
	penaltyHandler := handlers.NewPenaltyHandler(penaltyService, loc)
	moderationHandler := handlers.NewModerationHandler(moderationService, loc)
	appealHandler := handlers.NewAppealHandler(appealService, loc)

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
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

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
		return c.Next()
	})

	routes.Setup(app, cfg, loc, sessionService,
		sessionHandler, healthHandler, boardHandler, reportHandler,
		penaltyHandler, moderationHandler, appealHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("gateway starting", "port", cfg.Port, "upstream", cfg.GameAPIBaseURL)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("gateway failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down gateway...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("gateway shutdown error", "error", err)
	}

	if err := rdb.Close(); err != nil {
		slog.Error("redis close error", "error", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("gateway stopped")
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
