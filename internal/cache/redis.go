package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andinovuelo/flightops/config"
	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
	reportTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL, reportTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
		reportTTL: reportTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, airlineID int64, from, to time.Time) ([]domain.FlightSummary, error) {
	data, err := c.client.Get(ctx, searchKey(airlineID, from, to)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightSummary
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, airlineID int64, from, to time.Time, flights []domain.FlightSummary) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(airlineID, from, to), payload, c.searchTTL).Err()
}

func (c *RedisCache) GetFrequentFlyers(ctx context.Context, minFlights int) ([]domain.FrequentFlyer, error) {
	data, err := c.client.Get(ctx, frequentFlyersKey(minFlights)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flyers []domain.FrequentFlyer
	if err := json.Unmarshal(data, &flyers); err != nil {
		return nil, err
	}
	return flyers, nil
}

func (c *RedisCache) SetFrequentFlyers(ctx context.Context, minFlights int, flyers []domain.FrequentFlyer) error {
	payload, err := json.Marshal(flyers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, frequentFlyersKey(minFlights), payload, c.reportTTL).Err()
}

func searchKey(airlineID int64, from, to time.Time) string {
	return fmt.Sprintf("cache:search:%d:%s:%s", airlineID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func frequentFlyersKey(minFlights int) string {
	return fmt.Sprintf("cache:frequent_flyers:%d", minFlights)
}
