package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wowbook/clarity-backend/internal/engine"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/types"
)

type stubAI struct {
	jsonFn func(out any) error
}

func (s *stubAI) GenerateText(ctx context.Context, system, user string) (string, error) {
	return "", nil
}

func (s *stubAI) GenerateJSON(ctx context.Context, system, user string, out any) error {
	return s.jsonFn(out)
}

type stubCache struct {
	store map[string]*types.RecommendationResult
	sets  int
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string]*types.RecommendationResult{}}
}

func (s *stubCache) Get(ctx context.Context, fingerprint string) (*types.RecommendationResult, bool) {
	r, ok := s.store[fingerprint]
	return r, ok
}

func (s *stubCache) Set(ctx context.Context, fingerprint string, result *types.RecommendationResult) {
	s.sets++
	s.store[fingerprint] = result
}

func (s *stubCache) Close() error { return nil }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func sampleAnswers() []types.Answer {
	return []types.Answer{
		{QuestionID: "q1", Values: []string{"q1-a1"}},
		{QuestionID: "q3", Values: []string{"q3-a1"}},
		{QuestionID: "q9", Values: []string{"cloudy"}},
		{QuestionID: "q12", Values: []string{"peace"}},
	}
}

func TestAnalyzeWithoutAIUsesDefaults(t *testing.T) {
	svc := NewAnalysisService(testLogger(t), nil, nil)

	result, err := svc.Analyze(context.Background(), uuid.New(), sampleAnswers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.RecommendedPrograms) != engine.RecommendationCount {
		t.Fatalf("got %d programs", len(result.RecommendedPrograms))
	}
	if result.ClarityType == nil {
		t.Error("clarity type missing")
	}
	if result.Clarity < 0 || result.Clarity > 100 {
		t.Errorf("clarity %d out of range", result.Clarity)
	}
	if result.Message != defaultMessage {
		t.Errorf("message = %q, want default", result.Message)
	}
	for _, p := range result.RecommendedPrograms {
		if result.ProgramReasons[p.ID] == "" {
			t.Errorf("no reason for %s", p.ID)
		}
	}
	if len(result.Journey) != engine.RecommendationCount {
		t.Errorf("journey has %d steps", len(result.Journey))
	}
}

func TestAnalyzeSurvivesAIFailure(t *testing.T) {
	broken := &stubAI{jsonFn: func(out any) error {
		return errors.New("gemini json decode error: boom")
	}}
	svc := NewAnalysisService(testLogger(t), broken, nil)

	result, err := svc.Analyze(context.Background(), uuid.New(), sampleAnswers())
	if err != nil {
		t.Fatalf("AI failure must not fail the analysis: %v", err)
	}
	if result.Message != defaultMessage {
		t.Errorf("message = %q, want default", result.Message)
	}
	if len(result.RecommendedPrograms) != engine.RecommendationCount {
		t.Errorf("deterministic picks degraded: %d", len(result.RecommendedPrograms))
	}
}

func TestAnalyzeMergesPartialAIOutput(t *testing.T) {
	partial := &stubAI{jsonFn: func(out any) error {
		return json.Unmarshal([]byte(`{"message":"소름 돋는 한 줄"}`), out)
	}}
	svc := NewAnalysisService(testLogger(t), partial, nil)

	result, err := svc.Analyze(context.Background(), uuid.New(), sampleAnswers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "소름 돋는 한 줄" {
		t.Errorf("message = %q, want AI message", result.Message)
	}
	for _, p := range result.RecommendedPrograms {
		if result.ProgramReasons[p.ID] == "" {
			t.Errorf("missing default reason for %s", p.ID)
		}
	}
	if len(result.Journey) == 0 {
		t.Error("journey should fall back to defaults")
	}
}

func TestAnalyzeRejectsMalformedAnswers(t *testing.T) {
	svc := NewAnalysisService(testLogger(t), nil, nil)

	_, err := svc.Analyze(context.Background(), uuid.New(), []types.Answer{
		{QuestionID: "q1", Values: []string{"not-a-value"}},
	})
	var malformed *engine.MalformedAnswerError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedAnswerError, got %v", err)
	}
}

func TestAnalyzeUsesResultCache(t *testing.T) {
	cache := newStubCache()
	svc := NewAnalysisService(testLogger(t), nil, cache)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, uuid.New(), sampleAnswers())
	if err != nil {
		t.Fatal(err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Same selections, different order and different free text: same entry.
	reordered := []types.Answer{
		{QuestionID: "q12", Values: []string{"peace"}},
		{QuestionID: "q9", Values: []string{"cloudy"}},
		{QuestionID: "q3", Values: []string{"q3-a1"}},
		{QuestionID: "q1", Values: []string{"q1-a1"}},
		{QuestionID: "q13", Text: "캐시와 무관한 텍스트"},
	}
	second, err := svc.Analyze(ctx, uuid.New(), reordered)
	if err != nil {
		t.Fatal(err)
	}
	if cache.sets != 1 {
		t.Errorf("cache miss on equivalent submission, writes = %d", cache.sets)
	}
	if second != first {
		t.Error("expected the cached result to be returned")
	}
}
