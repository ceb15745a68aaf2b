package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/usher_checkin/internal/config"
	"github.com/shenikar/usher_checkin/internal/geo"
	v1 "github.com/shenikar/usher_checkin/internal/handler/http/v1"
	"github.com/shenikar/usher_checkin/internal/repository"
	"github.com/shenikar/usher_checkin/internal/service"
	"github.com/shenikar/usher_checkin/internal/webhook"
	"github.com/shenikar/usher_checkin/pkg/logger"
	"github.com/shenikar/usher_checkin/pkg/postgres"
	redisclient "github.com/shenikar/usher_checkin/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/usher_checkin/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Usher Check-in API
// @version 1.0
// @description Attendance check-in and session security advisories for the ushering department.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Без залов сервису нечего проверять: падаем сразу
	resolver := geo.MustNewResolver(cfg.Venues, cfg.PerimeterMeters)
	log.WithFields(logrus.Fields{
		"venues":           len(cfg.Venues),
		"perimeter_meters": cfg.PerimeterMeters,
	}).Info("Venue resolver initialized")

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки: издатель кладет события в очередь, воркер доставляет
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Репозитории
	checkInRepo := repository.NewCheckInRepository(dbpool)
	deviceRepo := repository.NewDeviceRepository(dbpool)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.AdvisorySessionTTL)

	// Сервисы
	checkInService := service.NewCheckInService(checkInRepo, resolver, log, cfg, webhookPublisher)
	advisoryService := service.NewAdvisoryService(resolver, sessionRepo, deviceRepo, log, cfg, webhookPublisher)

	handler := v1.NewHandler(checkInService, advisoryService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков до закрытия Redis
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
