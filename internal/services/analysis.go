package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/clients/gemini"
	"github.com/wowbook/clarity-backend/internal/clients/redis"
	"github.com/wowbook/clarity-backend/internal/engine"
	"github.com/wowbook/clarity-backend/internal/observability"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/types"
)

type AnalysisService interface {
	Analyze(ctx context.Context, userID uuid.UUID, answers []types.Answer) (*types.RecommendationResult, error)
}

type analysisService struct {
	log   *logger.Logger
	ai    gemini.Client
	cache redis.ResultCache
}

// NewAnalysisService accepts nil for both collaborators: without the AI the
// commentary falls back to defaults, without Redis every submission is
// recomputed.
func NewAnalysisService(log *logger.Logger, ai gemini.Client, cache redis.ResultCache) AnalysisService {
	serviceLog := log.With("service", "AnalysisService")
	return &analysisService{log: serviceLog, ai: ai, cache: cache}
}

func (as *analysisService) Analyze(ctx context.Context, userID uuid.UUID, answers []types.Answer) (*types.RecommendationResult, error) {
	ctx, span := observability.Tracer("services").Start(ctx, "AnalysisService.Analyze")
	defer span.End()

	if err := engine.Validate(answers); err != nil {
		return nil, err
	}

	fingerprint := engine.Fingerprint(answers)
	if as.cache != nil {
		if cached, ok := as.cache.Get(ctx, fingerprint); ok {
			as.log.Debug("Result cache hit", "fingerprint", fingerprint)
			return cached, nil
		}
	}

	// The three calculators are independent of each other.
	var (
		profile types.EmotionProfile
		code    types.ClarityTypeCode
		clarity int
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		profile, err = engine.ComputeEmotionProfile(answers)
		return err
	})
	g.Go(func() error {
		var err error
		code, err = engine.ComputeClarityType(answers)
		return err
	})
	g.Go(func() error {
		var err error
		clarity, err = engine.ComputeClarityScore(answers)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	picks, err := engine.RecommendPrograms(profile, catalog.Programs())
	if err != nil {
		return nil, err
	}

	clarityType, _ := catalog.ClarityTypeByCode(code)

	commentary := defaultCommentary(picks)
	if as.ai != nil {
		var aiOut Commentary
		prompt := buildCommentaryPrompt(answers, profile, clarity, picks)
		if err := as.ai.GenerateJSON(ctx, "", prompt, &aiOut); err != nil {
			as.log.Warn("AI commentary failed, keeping defaults", "user_id", userID.String(), "error", err)
		} else {
			commentary = mergeCommentary(commentary, aiOut, picks)
		}
	}

	result := &types.RecommendationResult{
		ClarityType:         clarityType,
		RecommendedPrograms: picks,
		ProgramReasons:      commentary.ProgramReasons,
		UserEmotionProfile:  profile,
		Clarity:             clarity,
		Message:             commentary.Message,
		Journey:             commentary.Journey,
	}

	if as.cache != nil {
		as.cache.Set(ctx, fingerprint, result)
	}
	return result, nil
}
