package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/abcd-backend/internal/platform/envutil"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration

	// ResolveTimeout bounds a shared miss resolution, which runs detached from its callers.
	ResolveTimeout time.Duration
}

func RedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:     envutil.String("REDIS_ADDR", ""),
		Password: envutil.String("REDIS_PASSWORD", ""),
		DB:       envutil.Int("REDIS_DB", 0),
		Prefix:   envutil.String("FILTER_CACHE_PREFIX", "abcd:filter"),
		TTL:      envutil.Duration("FILTER_CACHE_TTL", 5*time.Minute),

		ResolveTimeout: envutil.Duration("FILTER_CACHE_RESOLVE_TIMEOUT", 30*time.Second),
	}
}

func (c RedisConfig) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

// NewRedisClient connects and pings. Callers check Enabled first.
func NewRedisClient(log *logger.Logger, cfg RedisConfig) (*goredis.Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("redis connected", "addr", cfg.Addr)
	return rdb, nil
}
