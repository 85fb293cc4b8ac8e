package app

import (
	"github.com/gin-gonic/gin"

	httpX "github.com/yungbote/abcd-backend/internal/http"
	"github.com/yungbote/abcd-backend/internal/observability"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, h Handlers, mw Middleware) *gin.Engine {
	rc := httpX.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		AllowedOrigins: cfg.CORSOrigins,
		AuthMiddleware: mw.Auth,
		HealthHandler:  h.Health,
		CatalogHandler: h.Catalog,
		LinkHandler:    h.Links,
	}
	if cfg.Otel.Enabled {
		rc.ServiceName = cfg.Otel.ServiceName
	}
	return httpX.NewRouter(rc)
}
