package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lmsapi/docs"
	"lmsapi/internal/config"
	"lmsapi/internal/database"
	"lmsapi/internal/database/migration"
	handlers "lmsapi/internal/http/handler"
	"lmsapi/internal/http/middleware"
	"lmsapi/internal/model"
	"lmsapi/internal/otel"
	"lmsapi/internal/repository/postgres"
	"lmsapi/internal/service"
	"lmsapi/internal/storage"
)

// @title LMS API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Tracing degrades to a no-op when disabled or when the exporter fails
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Apply pending schema migrations before serving traffic
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Select the media storage backend
	var (
		objStore storage.Storage
		backend  model.StorageBackend
	)
	switch cfg.Storage.Backend {
	case "cloud":
		objStore, err = storage.NewMinIO(cfg.MinIO)
		backend = model.StorageBackendCloud
	default:
		objStore, err = storage.NewLocal(cfg.Storage.Local)
		backend = model.StorageBackendLocal
	}
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories
	courseRepo := postgres.NewCoursePostgres(db)
	moduleRepo := postgres.NewModulePostgres(db)
	lessonRepo := postgres.NewLessonPostgres(db)
	enrollmentRepo := postgres.NewEnrollmentPostgres(db)
	trackRepo := postgres.NewTrackPostgres(db)
	reportRepo := postgres.NewReportPostgres(db)
	mediaRepo := postgres.NewMediaPostgres(db)
	settingsRepo := postgres.NewSettingsPostgres(db)

	// Initialize services
	svcs := handlers.Services{
		Catalog:     service.NewCatalogService(courseRepo, moduleRepo, lessonRepo),
		Enrollments: service.NewEnrollmentService(enrollmentRepo, courseRepo),
		Tracks:      service.NewTrackService(trackRepo, courseRepo, lessonRepo),
		Reports:     service.NewReportService(reportRepo),
		Media:       service.NewMediaService(objStore, backend, mediaRepo, settingsRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(loc))

	// Prometheus HTTP metrics with a /metrics scrape endpoint
	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

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

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
