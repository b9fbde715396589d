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
	"strconv"
	"syscall"
	"time"

	"myfood/cmd"
	httpadapter "myfood/internal/adapters/in/http"
	"myfood/internal/adapters/out/kafka"
	"myfood/internal/adapters/out/postgres"
	lock "myfood/internal/adapters/out/redis"
	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/ports"
	"myfood/internal/jobs"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultConfirmLockTTL = 10 * time.Second
	shutdownTimeout       = 10 * time.Second
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	clock, err := kernel.NewZonedClock(configs.TimeZone)
	if err != nil {
		log.Fatalf("Invalid time zone: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	locker, closeLocker := newLocker(configs, logger)
	defer closeLocker()

	app := cmd.NewCompositionRoot(gormDB, clock, publisher, locker, logger)

	if configs.SeedDemoData {
		seedDemoData(app, logger)
	}

	jobManager := jobs.NewJobManager(app.CreateGetKitchenOrdersQueryHandler(), configs.KitchenReportSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOrDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		ConfirmLockTTL:         defaultConfirmLockTTL,
		KitchenReportSchedule:  os.Getenv("KITCHEN_REPORT_SCHEDULE"),
		TimeZone:               envOrDefault("TIME_ZONE", kernel.PickupTimeZone),
	}

	if raw := os.Getenv("CONFIRM_LOCK_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid CONFIRM_LOCK_TTL: %v", err)
		}
		config.ConfirmLockTTL = ttl
	}
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("Invalid RATE_LIMIT_RPS: %v", err)
		}
		config.RateLimitRPS = rps
	}
	if raw := os.Getenv("SEED_DEMO_DATA"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Fatalf("Invalid SEED_DEMO_DATA: %v", err)
		}
		config.SeedDemoData = seed
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		return kafka.NewNopPublisher(logger), func() {}
	}

	producer, err := kafka.NewOrderProducer(brokers, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		log.Fatalf("Failed to connect to kafka: %v", err)
	}
	return producer, func() {
		if closeErr := producer.Close(); closeErr != nil {
			logger.Error("Failed to close kafka producer", "error", closeErr)
		}
	}
}

func newLocker(configs cmd.Config, logger *slog.Logger) (ports.ConfirmationLocker, func()) {
	if configs.RedisAddr == "" {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	logger.Info("Confirmation lock enabled", "redis", configs.RedisAddr, "ttl", configs.ConfirmLockTTL)

	return lock.NewConfirmationLock(client, configs.ConfirmLockTTL, logger), func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Error("Failed to close redis client", "error", closeErr)
		}
	}
}

func seedDemoData(app cmd.CompositionRoot, logger *slog.Logger) {
	handler := app.CreateSeedDemoDataCommandHandler()
	result, err := handler.Handle(context.Background(), commands.DefaultSeedDemoDataCommand())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	logger.Info("Demo data", "skipped", result.Skipped,
		"users", result.Users, "slots", result.Slots, "menus", result.Menus)
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.RouterConfig{
		RateLimitRPS: configs.RateLimitRPS,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()
	logger.Info("HTTP server started", "port", configs.HTTPPort)

	<-ctx.Done()
	shutdown(e, logger)
}

func shutdown(e *echo.Echo, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
