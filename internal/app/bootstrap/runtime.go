// Package bootstrap builds the runtime dependencies main wires together.
package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/barbershop-express/booking-web/internal/config"
	"github.com/barbershop-express/booking-web/internal/session"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildSessionStore returns the Redis-backed session store when Redis is
// available. Without Redis the app still serves the booking flow, but the
// establishment choice and admin login will not stick.
func BuildSessionStore(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) *session.Store {
	if redisClient == nil {
		if logger != nil {
			logger.Warn("sessions disabled: no redis client")
		}
		return nil
	}
	return session.NewStore(redisClient, cfg.SessionTTL)
}
