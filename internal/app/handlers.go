package app

import (
	"github.com/yungbote/abcd-backend/internal/data/db"
	"github.com/yungbote/abcd-backend/internal/http/handlers"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Catalog *handlers.CatalogHandler
	Links   *handlers.LinkHandler
}

func wireHandlers(log *logger.Logger, services Services, dbs *db.Service) Handlers {
	log.Info("Wiring handlers...")
	h := Handlers{
		Catalog: handlers.NewCatalogHandler(services.Catalog),
		Links:   handlers.NewLinkHandler(services.Links),
	}
	if dbs != nil {
		h.Health = handlers.NewHealthHandler(dbs)
	} else {
		h.Health = handlers.NewHealthHandler(nil)
	}
	return h
}
