package app

import (
	"gorm.io/gorm"

	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/repos"
)

type Repos struct {
	Result repos.ResultRepo
	Diary  repos.DiaryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Result: repos.NewResultRepo(db, log),
		Diary:  repos.NewDiaryRepo(db, log),
	}
}
