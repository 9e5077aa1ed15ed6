package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/platform/apierr"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/repos"
	"github.com/wowbook/clarity-backend/internal/types"
)

const maxDiaryContentRunes = 500

type DiaryService interface {
	Create(ctx context.Context, userID uuid.UUID, programID string, mood types.WeatherMood, content string) (*types.WeatherDiary, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.WeatherDiary, error)
	Stats(ctx context.Context) (*types.AdminStats, error)
}

type diaryService struct {
	db        *gorm.DB
	log       *logger.Logger
	diaryRepo repos.DiaryRepo
}

func NewDiaryService(db *gorm.DB, log *logger.Logger, diaryRepo repos.DiaryRepo) DiaryService {
	serviceLog := log.With("service", "DiaryService")
	return &diaryService{db: db, log: serviceLog, diaryRepo: diaryRepo}
}

func (ds *diaryService) Create(ctx context.Context, userID uuid.UUID, programID string, mood types.WeatherMood, content string) (*types.WeatherDiary, error) {
	if !mood.Valid() {
		return nil, apierr.New(http.StatusBadRequest, "invalid_mood", fmt.Errorf("unknown mood %q", mood))
	}
	program, ok := catalog.ProgramByID(programID)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "unknown_program", fmt.Errorf("unknown program %q", programID))
	}
	if utf8.RuneCountInString(content) > maxDiaryContentRunes {
		return nil, apierr.New(http.StatusBadRequest, "content_too_long", fmt.Errorf("content exceeds %d characters", maxDiaryContentRunes))
	}

	entry := &types.WeatherDiary{
		UserID:       userID,
		ProgramID:    program.ID,
		ProgramTitle: program.Title,
		Mood:         mood,
		Content:      content,
	}
	saved, err := ds.diaryRepo.Create(ctx, nil, entry)
	if err != nil {
		ds.log.Error("Failed to save diary entry", "user_id", userID.String(), "program_id", programID, "error", err)
		return nil, err
	}
	return saved, nil
}

func (ds *diaryService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.WeatherDiary, error) {
	return ds.diaryRepo.ListByUser(ctx, nil, userID)
}

func (ds *diaryService) Stats(ctx context.Context) (*types.AdminStats, error) {
	entries, err := ds.diaryRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return aggregateDiaryStats(entries), nil
}

// aggregateDiaryStats folds diary entries into per-program statistics.
// Programs are ordered by diary volume, busiest first.
func aggregateDiaryStats(entries []*types.WeatherDiary) *types.AdminStats {
	type bucket struct {
		stats *types.ProgramStats
		users map[uuid.UUID]struct{}
	}
	buckets := map[string]*bucket{}
	allUsers := map[uuid.UUID]struct{}{}

	for _, entry := range entries {
		allUsers[entry.UserID] = struct{}{}
		b, ok := buckets[entry.ProgramID]
		if !ok {
			b = &bucket{
				stats: &types.ProgramStats{
					ProgramID:        entry.ProgramID,
					ProgramTitle:     entry.ProgramTitle,
					MoodDistribution: map[types.WeatherMood]int{},
				},
				users: map[uuid.UUID]struct{}{},
			}
			buckets[entry.ProgramID] = b
		}
		b.stats.TotalDiaries++
		b.stats.MoodDistribution[entry.Mood]++
		b.users[entry.UserID] = struct{}{}
	}

	programs := make([]types.ProgramStats, 0, len(buckets))
	for _, b := range buckets {
		b.stats.UniqueUsers = len(b.users)
		b.stats.TopMood = topMood(b.stats.MoodDistribution)
		programs = append(programs, *b.stats)
	}
	sort.Slice(programs, func(i, j int) bool {
		if programs[i].TotalDiaries != programs[j].TotalDiaries {
			return programs[i].TotalDiaries > programs[j].TotalDiaries
		}
		return programs[i].ProgramID < programs[j].ProgramID
	})

	return &types.AdminStats{
		TotalDiaries: len(entries),
		TotalUsers:   len(allUsers),
		Programs:     programs,
	}
}

var moodOrder = []types.WeatherMood{
	types.MoodSunny,
	types.MoodPartlyCloudy,
	types.MoodCloudy,
	types.MoodRainy,
	types.MoodStormy,
	types.MoodSnowy,
}

func topMood(distribution map[types.WeatherMood]int) types.WeatherMood {
	best := types.WeatherMood("")
	bestCount := 0
	for _, mood := range moodOrder {
		if count := distribution[mood]; count > bestCount {
			best = mood
			bestCount = count
		}
	}
	return best
}
