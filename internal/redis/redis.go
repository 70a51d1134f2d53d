package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// Enabled reports whether a client was configured. Callers treat the cache
// as optional and fall through to the database when it is off.
func Enabled() bool {
	return Rdb != nil
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if err := Rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write to redis")
	}
}

// Get returns the cached value and whether the key was present.
func Get(ctx context.Context, key string) (string, bool) {
	val, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to read from redis")
		}
		return "", false
	}
	return val, true
}

func Del(ctx context.Context, keys ...string) {
	if err := Rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to delete redis keys")
	}
}
