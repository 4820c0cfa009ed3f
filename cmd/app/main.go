package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/bootstrap"
	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/logger"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/Domenick1991/travelbooking/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log, "travelbooking-api")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		lg.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		lg.Fatal("apply migrations", zap.Error(err))
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.BookingsCacheDuration(), cfg.Booking.FlightsCacheDuration())
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
	defer producer.Close()

	catalogRepo := repository.NewCatalogRepository(pool)
	catalogService := catalog.NewCatalogService(catalogRepo, redisCache, lg)
	bookingService := booking.NewBookingService(
		repository.NewTxManager(pool),
		repository.NewHotelBookingRepository(pool),
		repository.NewFlightBookingRepository(pool),
		catalogRepo,
		booking.WithCache(redisCache),
		booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithPublishPolicy(cfg.Kafka.PublishRetries, cfg.Kafka.PublishTimeout()),
		booking.WithVoyageWindow(cfg.Booking.VoyageWindow()),
		booking.WithLogger(lg.Named("booking")),
	)

	router := bootstrap.NewRouter(cfg, lg, catalogService, bookingService, map[string]bootstrap.HealthCheck{
		"postgres": pool.Ping,
		"redis":    redisCache.Ping,
		"kafka":    producer.CheckConnection,
	})

	if err := bootstrap.Run(ctx, cfg, lg, router); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}
