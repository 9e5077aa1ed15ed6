package repos

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/types"
)

type DiaryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entry *types.WeatherDiary) (*types.WeatherDiary, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WeatherDiary, error)
	ListByProgram(ctx context.Context, tx *gorm.DB, programID string) ([]*types.WeatherDiary, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.WeatherDiary, error)
}

type diaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiaryRepo(db *gorm.DB, baseLog *logger.Logger) DiaryRepo {
	repoLog := baseLog.With("repo", "DiaryRepo")
	return &diaryRepo{db: db, log: repoLog}
}

func (dr *diaryRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.WeatherDiary) (*types.WeatherDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

func (dr *diaryRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WeatherDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var entries []*types.WeatherDiary
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (dr *diaryRepo) ListByProgram(ctx context.Context, tx *gorm.DB, programID string) ([]*types.WeatherDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var entries []*types.WeatherDiary
	if err := transaction.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (dr *diaryRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.WeatherDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var entries []*types.WeatherDiary
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
