package main

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dreamdwell/docs"
	"dreamdwell/internal/config"
	"dreamdwell/internal/database"
	"dreamdwell/internal/database/migration"
	handlers "dreamdwell/internal/http/handler"
	"dreamdwell/internal/http/middleware"
	"dreamdwell/internal/otel"
	"dreamdwell/internal/repository"
	"dreamdwell/internal/repository/memory"
	"dreamdwell/internal/repository/postgres"
	"dreamdwell/internal/service"
	"dreamdwell/internal/storage"
)

// @title DreamDwell Property API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Select the record store backing. The in-memory store serves the demo
	// listings for local development; Postgres is the production backing.
	var db *sql.DB
	var repo repository.PropertyRepository
	switch cfg.Store {
	case config.StorePostgres:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
			cancel()
			log.Fatalf("failed to migrate database: %v", err)
		}
		cancel()

		repo = postgres.NewPropertyPostgres(db)
	default:
		repo = memory.NewSeeded()
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	propSvc := service.NewPropertyService(repo)
	upSvc := service.NewUploadService(objStore, time.Duration(cfg.UploadExpirySec)*time.Second)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.CORS())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, propSvc, upSvc)

	// Swagger UI with dynamic host and scheme; APP_HOST is the fallback when
	// the request carries no Host header
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		if host := c.Get("Host"); host != "" {
			docs.SwaggerInfo.Host = host
		}
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
