package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"events-cleanup-service/internal/config"

	cleanupHttp "events-cleanup-service/internal/cleanup/adapters/http/fiber"
	cleanupRepoPg "events-cleanup-service/internal/cleanup/adapters/postgres"
	cleanupResolver "events-cleanup-service/internal/cleanup/adapters/resolver"
	cleanupPorts "events-cleanup-service/internal/cleanup/core/ports"
	cleanupUsecase "events-cleanup-service/internal/cleanup/core/usecase"

	hierarchyStore "events-cleanup-service/internal/hierarchy/adapters/gormstore"
	hierarchyHttp "events-cleanup-service/internal/hierarchy/adapters/http/fiber"
	hierarchyUsecase "events-cleanup-service/internal/hierarchy/core/usecase"

	healthHttp "events-cleanup-service/internal/health/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "events-cleanup-service/docs"
)

// @title Events Cleanup API
// @version 1.0
// @description Preview and bulk-delete analytics events by time range, environment, feature flag key or project.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		fatal(logger, "failed to open postgres", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.Ping(); err != nil {
		fatal(logger, "failed to ping postgres", err)
	}

	// The hierarchy store shares the same pool through gorm.
	gormDB, err := hierarchyStore.Open(db)
	if err != nil {
		fatal(logger, "failed to open gorm", err)
	}

	// Repositories
	eventRepository := cleanupRepoPg.NewEventRepository(cleanupRepoPg.NewSQLDB(db))
	hierarchyRepository := hierarchyStore.NewHierarchyRepository(gormDB)

	// Usecases
	getHierarchyUC := hierarchyUsecase.NewGetHierarchyUseCase(hierarchyRepository, logger)

	var resolver cleanupPorts.EnvironmentResolverPort = cleanupResolver.Unavailable{}
	if cfg.EnvResolver == config.ResolverHierarchy {
		resolver = cleanupResolver.NewHierarchy(getHierarchyUC)
	}
	logger.Info("environment resolver configured", slog.String("resolver", cfg.EnvResolver))

	cleanupUC := cleanupUsecase.NewCleanupUseCase(eventRepository, eventRepository, resolver, logger)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{AppName: "events-cleanup-service"})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	api := app.Group("/api")

	// hierarchy endpoints
	hierarchyHttp.NewHierarchyHandler(getHierarchyUC).Register(api.Group("/hierarchy"))

	// cleanup endpoints
	cleanupHttp.NewCleanupHandler(cleanupUC).Register(api.Group("/events"))

	// health endpoints
	healthHttp.NewHealthHandler(eventRepository, eventRepository).Register(api.Group("/health"))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped", slog.Any("error", err))
		}
	}()

	logger.Info("server started", slog.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", slog.Any("error", err))
	}

	logger.Info("server exiting")
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("error", err))
	os.Exit(1)
}
