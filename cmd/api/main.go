package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/dtroode/sc-task/docs"
	"github.com/dtroode/sc-task/internal/cache"
	"github.com/dtroode/sc-task/internal/config"
	"github.com/dtroode/sc-task/internal/database"
	"github.com/dtroode/sc-task/internal/database/migration"
	handlers "github.com/dtroode/sc-task/internal/http/handler"
	"github.com/dtroode/sc-task/internal/http/middleware"
	"github.com/dtroode/sc-task/internal/logger"
	"github.com/dtroode/sc-task/internal/otel"
	"github.com/dtroode/sc-task/internal/repository"
	"github.com/dtroode/sc-task/internal/repository/cached"
	"github.com/dtroode/sc-task/internal/repository/postgres"
	"github.com/dtroode/sc-task/internal/service"
	"github.com/dtroode/sc-task/internal/storage"
)

// Multipart framing on top of the file itself.
const bodyLimitSlack = 1 << 20

// @title Book Catalog API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	blobs, err := storage.New(cfg.Storage, cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize blob storage")
	}
	if err := blobs.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare blob storage")
	}

	var bookRepo repository.BookRepository = postgres.NewBookPostgres(db)
	authorRepo := postgres.NewAuthorPostgres(db)

	var checks []handlers.Checker
	if cfg.Redis.Addr != "" {
		rc := cache.NewRedis(cfg.Redis)
		defer rc.Close()
		bookRepo = cached.NewBookRepository(bookRepo, rc, time.Duration(cfg.Redis.TTLSec)*time.Second)
		checks = append(checks, rc)
		log.Info().Str("addr", cfg.Redis.Addr).Int("ttl_sec", cfg.Redis.TTLSec).Msg("book cache enabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Storage.MaxUploadSize) + bodyLimitSlack,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, handlers.Services{
		Books:         service.NewBookService(bookRepo, authorRepo),
		Authors:       service.NewAuthorService(authorRepo),
		Files:         service.NewFileService(bookRepo, blobs),
		MaxUploadSize: cfg.Storage.MaxUploadSize,
		Gatherer:      reg,
		Checks:        checks,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("storage", cfg.Storage.Backend).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
