package app

import (
	"github.com/yungbote/abcd-backend/internal/http/middleware"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	if services.Auth == nil {
		return Middleware{}
	}
	return Middleware{Auth: middleware.NewAuthMiddleware(log, services.Auth)}
}
