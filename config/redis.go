package config

import (
	"github.com/redis/go-redis/v9"
)

// SetupRedis builds the client backing the rate-limit counters.
func SetupRedis(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}
