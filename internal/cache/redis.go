package cache

import (
	"context"
	"encoding/json"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const flightsKey = "cache:flights"

// FlightCache keeps the public flight listing in redis. A nil *FlightCache is
// valid and behaves as a permanent miss, so the service runs without redis.
type FlightCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlightCache(cfg utils.RedisConfig) *FlightCache {
	if cfg.Addr == "" {
		return nil
	}

	return &FlightCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: time.Duration(cfg.CacheTTL) * time.Second,
	}
}

func (c *FlightCache) GetFlights(ctx context.Context) ([]*entity.Flight, error) {
	if c == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []*entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *FlightCache) SetFlights(ctx context.Context, flights []*entity.Flight) error {
	if c == nil {
		return nil
	}

	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.ttl).Err()
}

// Invalidate drops the cached listing; called after any flight or seat mutation.
func (c *FlightCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, flightsKey).Err()
}
