package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/wowbook/clarity-backend/internal/engine"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/repos"
	"github.com/wowbook/clarity-backend/internal/types"
)

type ResultService interface {
	Save(ctx context.Context, userID uuid.UUID, result *types.RecommendationResult, answers []types.Answer) (*types.AnalysisResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.AnalysisResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.AnalysisResult, error)
}

type resultService struct {
	db         *gorm.DB
	log        *logger.Logger
	resultRepo repos.ResultRepo
}

func NewResultService(db *gorm.DB, log *logger.Logger, resultRepo repos.ResultRepo) ResultService {
	serviceLog := log.With("service", "ResultService")
	return &resultService{db: db, log: serviceLog, resultRepo: resultRepo}
}

func (rs *resultService) Save(ctx context.Context, userID uuid.UUID, result *types.RecommendationResult, answers []types.Answer) (*types.AnalysisResult, error) {
	if result == nil {
		return nil, fmt.Errorf("result required")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	row := &types.AnalysisResult{
		UserID:      userID,
		Fingerprint: engine.Fingerprint(answers),
		Result:      datatypes.JSON(resultJSON),
		Answers:     datatypes.JSON(answersJSON),
	}
	saved, err := rs.resultRepo.Create(ctx, nil, row)
	if err != nil {
		rs.log.Error("Failed to save analysis result", "user_id", userID.String(), "error", err)
		return nil, err
	}
	return saved, nil
}

func (rs *resultService) GetByID(ctx context.Context, id uuid.UUID) (*types.AnalysisResult, error) {
	return rs.resultRepo.GetByID(ctx, nil, id)
}

func (rs *resultService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.AnalysisResult, error) {
	return rs.resultRepo.ListByUser(ctx, nil, userID)
}
