package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/redis/go-redis/v9"
)

// WeatherCacheRepository caches raw weather API responses in Redis.
type WeatherCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached responses
}

// NewWeatherCacheRepository creates a new repository instance with the given TTL.
func NewWeatherCacheRepository(client *redis.Client, expiration time.Duration) *WeatherCacheRepository {
	return &WeatherCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func weatherKey(city, state, country string) string {
	return fmt.Sprintf("weather:%s:%s:%s", city, state, country)
}

// GetWeather fetches a cached weather payload for the given location.
func (r *WeatherCacheRepository) GetWeather(ctx context.Context, city, state, country string) ([]byte, error) {
	key := weatherKey(city, state, country)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err == redis.Nil {
		return nil, fmt.Errorf("weather not found in cache for %s", key)
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// SetWeather caches a weather payload for the given location with expiration.
func (r *WeatherCacheRepository) SetWeather(ctx context.Context, city, state, country string, payload []byte) error {
	key := weatherKey(city, state, country)
	err := r.client.Set(ctx, key, payload, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"size", len(payload),
		"error", err,
	)

	return err
}
