package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	httpX "github.com/yungbote/abcd-backend/internal/http"
	"github.com/yungbote/abcd-backend/internal/observability"
	"github.com/yungbote/abcd-backend/internal/platform/envutil"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Router   *gin.Engine

	shutdownOtel func(context.Context) error
}

// New builds the full dependency graph from the environment.
func New(ctx context.Context) (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	shutdownOtel := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(log)

	clients, err := wireClients(log, cfg)
	if err != nil {
		_ = shutdownOtel(ctx)
		log.Sync()
		return nil, err
	}
	metrics.RegisterDB(log, clients.DB.DB())

	reposet := wireRepos(clients.DB.DB(), log)
	serviceset, err := wireServices(clients.DB.DB(), clients.Redis, log, cfg, metrics, reposet)
	if err != nil {
		clients.Close()
		_ = shutdownOtel(ctx)
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, serviceset, clients.DB)
	mw := wireMiddleware(log, serviceset)
	router := wireRouter(log, cfg, metrics, handlerset, mw)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Clients:      clients,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Router:       router,
		shutdownOtel: shutdownOtel,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Metrics.StartRedisCollector(ctx, a.Log, a.Clients.Redis)
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
	return (&httpX.Server{Engine: a.Router}).Run(ctx, a.Cfg.Addr())
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.shutdownOtel != nil {
		_ = a.shutdownOtel(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
