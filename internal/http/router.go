package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/abcd-backend/internal/http/handlers"
	httpMW "github.com/yungbote/abcd-backend/internal/http/middleware"
	"github.com/yungbote/abcd-backend/internal/observability"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
	"github.com/yungbote/abcd-backend/internal/services"
)

type RouterConfig struct {
	ServiceName    string
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware
	HealthHandler  *httpH.HealthHandler
	CatalogHandler *httpH.CatalogHandler
	LinkHandler    *httpH.LinkHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	if cfg.Metrics != nil {
		r.Use(httpMW.Metrics(cfg.Metrics, "/metrics"))
	}
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.CatalogHandler != nil {
			api.GET("/facets", cfg.CatalogHandler.Facets)
			api.GET("/catalog/:kind", cfg.CatalogHandler.List)
			api.GET("/catalog/:kind/ids", cfg.CatalogHandler.ResolveIDs)
			api.GET("/catalog/:kind/:id", cfg.CatalogHandler.Get)
		}
	}

	admin := api.Group("/admin")
	{
		if cfg.AuthMiddleware != nil {
			admin.Use(cfg.AuthMiddleware.RequireRole(services.RoleAdmin))
		}
		if cfg.LinkHandler != nil && cfg.AuthMiddleware != nil {
			admin.POST("/links/:association", cfg.LinkHandler.Link)
			admin.DELETE("/links/:association", cfg.LinkHandler.Unlink)
		}
	}

	return r
}
