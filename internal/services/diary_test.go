package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wowbook/clarity-backend/internal/platform/apierr"
	"github.com/wowbook/clarity-backend/internal/types"
)

type stubDiaryRepo struct {
	entries []*types.WeatherDiary
}

func (s *stubDiaryRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.WeatherDiary) (*types.WeatherDiary, error) {
	entry.ID = uuid.New()
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *stubDiaryRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WeatherDiary, error) {
	var out []*types.WeatherDiary
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubDiaryRepo) ListByProgram(ctx context.Context, tx *gorm.DB, programID string) ([]*types.WeatherDiary, error) {
	var out []*types.WeatherDiary
	for _, e := range s.entries {
		if e.ProgramID == programID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubDiaryRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.WeatherDiary, error) {
	return s.entries, nil
}

func TestDiaryCreateValidation(t *testing.T) {
	svc := NewDiaryService(nil, testLogger(t), &stubDiaryRepo{})
	ctx := context.Background()
	userID := uuid.New()

	var apiErr *apierr.Error
	if _, err := svc.Create(ctx, userID, "prog-1", "hurricane", "바람이 너무 세요"); err == nil {
		t.Error("expected error for unknown mood")
	} else if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Errorf("unknown mood should map to 400, got %v", err)
	}
	if _, err := svc.Create(ctx, userID, "prog-404", types.MoodSunny, "좋았어요"); err == nil {
		t.Error("expected error for unknown program")
	} else if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("unknown program should map to 404, got %v", err)
	}

	entry, err := svc.Create(ctx, userID, "prog-1", types.MoodSunny, "마음이 맑아졌어요")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ProgramTitle == "" {
		t.Error("program title should be denormalized from the catalog")
	}
}

func TestAggregateDiaryStats(t *testing.T) {
	userA, userB := uuid.New(), uuid.New()
	entries := []*types.WeatherDiary{
		{UserID: userA, ProgramID: "prog-1", ProgramTitle: "개막식", Mood: types.MoodSunny},
		{UserID: userA, ProgramID: "prog-1", ProgramTitle: "개막식", Mood: types.MoodSunny},
		{UserID: userB, ProgramID: "prog-1", ProgramTitle: "개막식", Mood: types.MoodRainy},
		{UserID: userB, ProgramID: "prog-2", ProgramTitle: "사진", Mood: types.MoodCloudy},
	}

	stats := aggregateDiaryStats(entries)
	if stats.TotalDiaries != 4 {
		t.Errorf("total diaries = %d, want 4", stats.TotalDiaries)
	}
	if stats.TotalUsers != 2 {
		t.Errorf("total users = %d, want 2", stats.TotalUsers)
	}
	if len(stats.Programs) != 2 {
		t.Fatalf("programs = %d, want 2", len(stats.Programs))
	}

	first := stats.Programs[0]
	if first.ProgramID != "prog-1" {
		t.Fatalf("busiest program = %s, want prog-1", first.ProgramID)
	}
	if first.TotalDiaries != 3 || first.UniqueUsers != 2 {
		t.Errorf("prog-1 stats = %+v", first)
	}
	if first.TopMood != types.MoodSunny {
		t.Errorf("top mood = %s, want sunny", first.TopMood)
	}
	if first.MoodDistribution[types.MoodRainy] != 1 {
		t.Errorf("mood distribution = %+v", first.MoodDistribution)
	}
}

func TestAggregateDiaryStatsEmpty(t *testing.T) {
	stats := aggregateDiaryStats(nil)
	if stats.TotalDiaries != 0 || stats.TotalUsers != 0 || len(stats.Programs) != 0 {
		t.Errorf("empty aggregate = %+v", stats)
	}
}
