package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Analysis  services.AnalysisService
	Result    services.ResultService
	Diary     services.DiaryService
	Keyword   services.KeywordService
	ShareCard services.ShareCardService
}

func wireServices(db *gorm.DB, log *logger.Logger, clients Clients, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	auth, err := services.NewAuthService(log)
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}

	analysis := services.NewAnalysisService(log, clients.Gemini, clients.ResultCache)
	result := services.NewResultService(db, log, reposet.Result)
	diary := services.NewDiaryService(db, log, reposet.Diary)
	keyword := services.NewKeywordService(db, log, reposet.Diary, clients.Gemini)

	// Card rendering needs a TTF with Hangul glyphs; skip when unset.
	shareCard, err := services.NewShareCardService(log)
	if err != nil {
		log.Warn("share card rendering disabled", "error", err)
		shareCard = nil
	}

	return Services{
		Auth:      auth,
		Analysis:  analysis,
		Result:    result,
		Diary:     diary,
		Keyword:   keyword,
		ShareCard: shareCard,
	}, nil
}
