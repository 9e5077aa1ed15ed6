package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/wowbook/clarity-backend/internal/platform/apierr"
	"github.com/wowbook/clarity-backend/internal/types"
)

func TestKeywordExtractUnknownProgram(t *testing.T) {
	svc := NewKeywordService(nil, testLogger(t), &stubDiaryRepo{}, nil)

	_, err := svc.Extract(context.Background(), "prog-404")
	if err == nil {
		t.Fatal("expected error for unknown program")
	}
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("unknown program should map to 404, got %v", err)
	}
}

func TestKeywordExtractWordCountFallback(t *testing.T) {
	repo := &stubDiaryRepo{entries: []*types.WeatherDiary{
		{UserID: uuid.New(), ProgramID: "prog-1", Mood: types.MoodSunny, Content: "마음이 맑아졌어요 정말 좋았어요"},
		{UserID: uuid.New(), ProgramID: "prog-1", Mood: types.MoodSunny, Content: "좋았어요!"},
		{UserID: uuid.New(), ProgramID: "prog-2", Mood: types.MoodRainy, Content: "다른 프로그램 일기"},
	}}
	svc := NewKeywordService(nil, testLogger(t), repo, nil)

	analysis, err := svc.Extract(context.Background(), "prog-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.ProgramID != "prog-1" {
		t.Errorf("programId = %q, want prog-1", analysis.ProgramID)
	}
	if len(analysis.Keywords) == 0 {
		t.Fatal("expected word-count keywords without an AI client")
	}
	if analysis.Keywords[0].Word != "좋았어요" || analysis.Keywords[0].Count != 2 {
		t.Errorf("top keyword = %+v, want 좋았어요 x2", analysis.Keywords[0])
	}
}

func TestKeywordExtractNoFeedback(t *testing.T) {
	svc := NewKeywordService(nil, testLogger(t), &stubDiaryRepo{}, nil)

	analysis, err := svc.Extract(context.Background(), "prog-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.Keywords) != 0 {
		t.Errorf("expected no keywords, got %+v", analysis.Keywords)
	}
}
