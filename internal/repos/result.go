package repos

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/types"
)

type ResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, result *types.AnalysisResult) (*types.AnalysisResult, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AnalysisResult, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AnalysisResult, error)
}

type resultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	repoLog := baseLog.With("repo", "ResultRepo")
	return &resultRepo{db: db, log: repoLog}
}

func (rr *resultRepo) Create(ctx context.Context, tx *gorm.DB, result *types.AnalysisResult) (*types.AnalysisResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).Create(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (rr *resultRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AnalysisResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.AnalysisResult
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *resultRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AnalysisResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.AnalysisResult
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
