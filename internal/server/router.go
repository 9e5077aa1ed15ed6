package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/wowbook/clarity-backend/internal/handlers"
	"github.com/wowbook/clarity-backend/internal/middleware"
)

type RouterConfig struct {
	Mode             string
	AllowOrigins     []string
	HealthHandler    *handlers.HealthcheckHandler
	AuthHandler      *handlers.AuthHandler
	AnalyzeHandler   *handlers.AnalyzeHandler
	ResultHandler    *handlers.ResultHandler
	DiaryHandler     *handlers.DiaryHandler
	AdminHandler     *handlers.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(otelgin.Middleware("clarity-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

// ===============
// || Public    ||
// ===============
	router.GET("/healthcheck", cfg.HealthHandler.Healthcheck)
	api := router.Group("/api")
	{
		api.POST("/session", cfg.AuthHandler.CreateSession)
		api.POST("/admin/login", cfg.AuthHandler.AdminLogin)
		// Saved results are shareable by link, no session needed.
		api.GET("/results/:id", cfg.ResultHandler.GetByID)
		api.GET("/results/:id/card.png", cfg.ResultHandler.Card)
	}

// ===============
// || Protected ||
// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Analysis
	protected.POST("/analyze", cfg.AnalyzeHandler.Analyze)
	// Results
	protected.POST("/results", cfg.ResultHandler.Save)
	protected.GET("/results", cfg.ResultHandler.ListMine)
	// Weather diary
	protected.POST("/diary", cfg.DiaryHandler.Create)
	protected.GET("/diary", cfg.DiaryHandler.ListMine)

// ===============
// || Admin     ||
// ===============
	admin := protected.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	admin.GET("/stats", cfg.AdminHandler.Stats)
	admin.POST("/keywords", cfg.AdminHandler.Keywords)

	return router
}
