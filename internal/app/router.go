package app

import (
	"github.com/gin-gonic/gin"

	"github.com/wowbook/clarity-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Mode:           cfg.Mode,
		AllowOrigins:   cfg.AllowOrigins,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		AnalyzeHandler: handlers.Analyze,
		ResultHandler:  handlers.Result,
		DiaryHandler:   handlers.Diary,
		AdminHandler:   handlers.Admin,
		AuthMiddleware: middleware.Auth,
	})
}
