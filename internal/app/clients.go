package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/abcd-backend/internal/data/cache"
	"github.com/yungbote/abcd-backend/internal/data/db"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type Clients struct {
	DB    *db.Service
	Redis *goredis.Client
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	dbs, err := db.Open(cfg.DB, log)
	if err != nil {
		return Clients{}, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrateAll(dbs.DB()); err != nil {
			_ = dbs.Close()
			return Clients{}, fmt.Errorf("automigrate: %w", err)
		}
		if err := db.EnsureJoinIndexes(dbs.DB()); err != nil {
			_ = dbs.Close()
			return Clients{}, fmt.Errorf("join indexes: %w", err)
		}
	}

	// Redis is optional; without it resolutions are not cached.
	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(log, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable; resolution cache disabled", "error", err)
			rdb = nil
		}
	}

	return Clients{DB: dbs, Redis: rdb}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
}
