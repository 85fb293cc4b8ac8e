package app

import (
	"strings"
	"time"

	"github.com/yungbote/abcd-backend/internal/data/cache"
	"github.com/yungbote/abcd-backend/internal/data/db"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/observability"
	"github.com/yungbote/abcd-backend/internal/platform/envutil"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const serviceName = "abcd-backend"

type Config struct {
	Env     string
	Version string
	Port    string

	DB    db.Config
	Redis cache.RedisConfig
	Otel  observability.OtelConfig

	JWTSecret    string
	JWTIssuer    string
	AccessTTL    time.Duration
	CORSOrigins  []string
	AutoMigrate  bool
	CourseFilter string
	DedupSingle  bool
}

func LoadConfig(log *logger.Logger) Config {
	env := envutil.String("APP_ENV", "development")
	version := envutil.String("APP_VERSION", "dev")
	cfg := Config{
		Env:          env,
		Version:      version,
		Port:         envutil.String("PORT", "8080"),
		DB:           db.ConfigFromEnv(),
		Redis:        cache.RedisConfigFromEnv(),
		Otel:         observability.OtelConfigFromEnv(serviceName, env, version),
		JWTSecret:    envutil.String("JWT_SECRET", ""),
		JWTIssuer:    envutil.String("JWT_ISSUER", "abcd"),
		AccessTTL:    envutil.Duration("ACCESS_TOKEN_TTL", time.Hour),
		CORSOrigins:  envutil.List("CORS_ALLOWED_ORIGINS", nil),
		AutoMigrate:  envutil.Bool("DB_AUTO_MIGRATE", true),
		CourseFilter: strings.ToLower(envutil.String("COURSE_FILTER_STRATEGY", filtering.StrategyIntersect)),
		DedupSingle:  envutil.Bool("FILTER_DEDUP_SINGLE_FACET", false),
	}
	switch cfg.CourseFilter {
	case filtering.StrategyIntersect, filtering.StrategyPushdown:
	default:
		log.Warn("unknown COURSE_FILTER_STRATEGY; using intersect", "value", cfg.CourseFilter)
		cfg.CourseFilter = filtering.StrategyIntersect
	}
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set; admin routes are disabled")
	}
	return cfg
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
