package app

import (
	"github.com/wowbook/clarity-backend/internal/handlers"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *handlers.HealthcheckHandler
	Auth    *handlers.AuthHandler
	Analyze *handlers.AnalyzeHandler
	Result  *handlers.ResultHandler
	Diary   *handlers.DiaryHandler
	Admin   *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthcheckHandler(log),
		Auth:    handlers.NewAuthHandler(log, services.Auth),
		Analyze: handlers.NewAnalyzeHandler(log, services.Analysis),
		Result:  handlers.NewResultHandler(log, services.Result, services.ShareCard),
		Diary:   handlers.NewDiaryHandler(log, services.Diary),
		Admin:   handlers.NewAdminHandler(log, services.Diary, services.Keyword),
	}
}
