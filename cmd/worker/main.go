package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andinovuelo/flightops/config"
	"github.com/andinovuelo/flightops/internal/cache"
	"github.com/andinovuelo/flightops/internal/kafka"
	"github.com/andinovuelo/flightops/internal/notify"
	"github.com/andinovuelo/flightops/internal/repository"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Reports.SearchCacheTTL)*time.Second,
		time.Duration(cfg.Reports.FrequentFlyerCacheTTL)*time.Second)

	reportRepo := repository.NewReportRepository(pool)
	reportService := reports.NewReportService(reportRepo, redisCache)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AuditTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.AuditEvent) error {
			return notifier.Notify(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.ReportRefreshMinutes) * time.Minute)
	defer refreshTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-refreshTicker.C:
			flyers, err := reportService.RefreshFrequentFlyers(ctx, cfg.Reports.FrequentFlyerMin)
			if err != nil {
				log.Printf("refresh frequent flyer report error: %v", err)
				continue
			}
			log.Printf("refreshed frequent flyer report, %d passengers", len(flyers))
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
