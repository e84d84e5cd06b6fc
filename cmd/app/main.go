package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andinovuelo/flightops/config"
	"github.com/andinovuelo/flightops/internal/bootstrap"
	"github.com/andinovuelo/flightops/internal/cache"
	"github.com/andinovuelo/flightops/internal/kafka"
	"github.com/andinovuelo/flightops/internal/repository"
	"github.com/andinovuelo/flightops/internal/service/flightops"
	"github.com/andinovuelo/flightops/internal/service/reports"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Reports.SearchCacheTTL)*time.Second,
		time.Duration(cfg.Reports.FrequentFlyerCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	boardingRepo := repository.NewBoardingRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	changeLogRepo := repository.NewChangeLogRepository(pool)

	opsService := flightops.NewFlightOpsService(
		flightRepo,
		boardingRepo,
		redisCache,
		producer,
		flightops.WithAuditTopic(cfg.Kafka.AuditTopic),
		flightops.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	reportService := reports.NewReportService(reportRepo, redisCache)

	if err := bootstrap.Run(ctx, cfg, opsService, reportService, changeLogRepo); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
