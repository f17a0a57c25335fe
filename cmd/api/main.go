package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/kagisom/localconnect-backend/internal/auth"
	"github.com/kagisom/localconnect-backend/internal/config"
	"github.com/kagisom/localconnect-backend/internal/contract"
	"github.com/kagisom/localconnect-backend/internal/database"
	"github.com/kagisom/localconnect-backend/internal/job"
	"github.com/kagisom/localconnect-backend/internal/middleware"
	"github.com/kagisom/localconnect-backend/internal/profile"
	"github.com/kagisom/localconnect-backend/internal/session"
	"github.com/kagisom/localconnect-backend/internal/transaction"
	"github.com/kagisom/localconnect-backend/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting LocalConnect API server", "environment", cfg.Environment)

	db, err := database.Open(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("Failed to prepare schema", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
	})
	setupCORS(app)
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))

	app.Get(contract.Health.Path, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "env": cfg.Environment})
	})

	userService := user.NewService(user.NewPostgresRepository(db))
	sessionRepo := session.NewPostgresRepository(db)

	jobService := job.NewService(job.NewPostgresRepository(db))
	jobHandler := job.NewHandler(jobService)

	transactionService := transaction.NewService(transaction.NewPostgresRepository(db))
	transactionHandler := transaction.NewHandler(transactionService)

	profileService := profile.NewService(profile.NewPostgresRepository(db))
	profileHandler := profile.NewHandler(profileService, userService, transactionService)

	// public surface first; everything registered after the jwt middleware
	// requires an identified acting user
	jobHandler.RegisterPublicRoutes(app)
	profileHandler.RegisterPublicRoutes(app)

	if cfg.IsProduction() {
		serveStatic(app, cfg.StaticDir)
	}

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// only bearer requests are verified here; cookie sessions and mock
		// mode are resolved by auth.CurrentUser below
		Filter: func(c *fiber.Ctx) bool {
			return c.Get(fiber.HeaderAuthorization) == ""
		},
	}))
	app.Use(auth.CurrentUser(sessionRepo, cfg.MockUserID))

	profileHandler.RegisterProtectedRoutes(app)
	transactionHandler.RegisterProtectedRoutes(app)

	if err := job.Seed(jobService); err != nil {
		logger.Error("Failed to seed jobs", "error", err)
		os.Exit(1)
	}
	if cfg.MockUserID != "" {
		if err := userService.EnsureDemoUser(cfg.MockUserID); err != nil {
			logger.Error("Failed to ensure demo user", "error", err)
			os.Exit(1)
		}
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
}

// serveStatic exposes the built frontend with a catch-all fallback to the
// SPA entry file so client-side routes resolve on hard reloads.
func serveStatic(app *fiber.App, dir string) {
	app.Static("/", dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.ErrNotFound
		}
		return c.SendFile(filepath.Join(dir, "index.html"))
	})
}
