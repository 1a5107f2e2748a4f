package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/maxwellkiplagat/Deliveroo/cmd"
	httpapi "github.com/maxwellkiplagat/Deliveroo/internal/adapters/in/http"
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/postgres/courierrepo"
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/postgres/parcelrepo"
	"github.com/maxwellkiplagat/Deliveroo/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to the database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.TimelineEntryDTO{},
		&courierrepo.CourierDTO{},
	); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(root.CreateAssignCourierCommandHandler(), root.Sessions(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())

	server := httpapi.NewServer(
		root.CreateCreateParcelCommandHandler(),
		root.CreateEditParcelCommandHandler(),
		root.CreateCancelParcelCommandHandler(),
		root.CreateUpdateParcelStatusCommandHandler(),
		root.CreateUpdateParcelLocationCommandHandler(),
		root.CreateAssignCourierCommandHandler(),
		root.CreateCreateCourierCommandHandler(),
		root.CreateGetParcelsQueryHandler(),
		root.CreateGetParcelByIDQueryHandler(),
		root.CreateTrackParcelQueryHandler(),
		root.CreateGetAllCouriersQueryHandler(),
		root.CreateWizardService(),
	)
	server.RegisterRoutes(e, configs.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
}

func getConfigs() cmd.Config {
	// A missing .env is fine in containers where the environment is set
	// directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 envOr("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 envOr("DB_NAME", "deliveroo"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaParcelEventsTopic: envOr("KAFKA_PARCEL_EVENTS_TOPIC", "parcel-events"),
		WizardTTL:              durationOr("WIZARD_TTL", 30*time.Minute),
		TrackingCacheTTL:       durationOr("TRACKING_CACHE_TTL", time.Minute),
		PaymentDelay:           durationOr("PAYMENT_DELAY", 200*time.Millisecond),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Invalid duration, using fallback", "key", key, "value", v, "fallback", fallback)
		return fallback
	}
	return d
}
