package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

func affinity(c, a, r, s int) types.EmotionAffinity {
	return types.EmotionAffinity{Calm: c, Active: a, Reflective: r, Social: s}
}

func TestRecommendProgramsInsufficientCatalog(t *testing.T) {
	small := []types.Program{
		{ID: "a", Title: "a", EmotionMatch: affinity(50, 50, 50, 50)},
		{ID: "b", Title: "b", EmotionMatch: affinity(50, 50, 50, 50)},
	}
	_, err := RecommendPrograms(types.EmotionProfile{Calm: 100}, small)
	var insufficient *InsufficientCatalogError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCatalogError, got %v", err)
	}
	if insufficient.Available != 2 || insufficient.Required != RecommendationCount {
		t.Errorf("unexpected error payload: %+v", insufficient)
	}
}

func TestRecommendProgramsReturnsThreeDistinct(t *testing.T) {
	profile := types.EmotionProfile{Calm: 75, Active: 40, Reflective: 100, Social: 50}
	picks, err := RecommendPrograms(profile, catalog.Programs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picks) != RecommendationCount {
		t.Fatalf("got %d picks, want %d", len(picks), RecommendationCount)
	}
	seen := map[string]struct{}{}
	for _, p := range picks {
		if _, dup := seen[p.ID]; dup {
			t.Errorf("program %s recommended twice", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	// The profile is prog-7's own affinity vector, so prog-7 is the
	// unbeatable first pick.
	if picks[0].ID != "prog-7" {
		t.Errorf("first pick = %s, want prog-7", picks[0].ID)
	}
}

func TestRecommendProgramsDeterministic(t *testing.T) {
	profile := types.EmotionProfile{Calm: 60, Active: 60, Reflective: 60, Social: 60}
	first, err := RecommendPrograms(profile, catalog.Programs())
	if err != nil {
		t.Fatal(err)
	}
	second, err := RecommendPrograms(profile, catalog.Programs())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same profile produced different picks: %v vs %v", ids(first), ids(second))
	}
}

func TestRecommendProgramsIdenticalVectorsKeepCatalogOrder(t *testing.T) {
	same := affinity(50, 50, 50, 50)
	clones := []types.Program{
		{ID: "c1", Title: "c1", Category: "x", Date: "d1", EmotionMatch: same},
		{ID: "c2", Title: "c2", Category: "x", Date: "d1", EmotionMatch: same},
		{ID: "c3", Title: "c3", Category: "x", Date: "d1", EmotionMatch: same},
		{ID: "c4", Title: "c4", Category: "x", Date: "d1", EmotionMatch: same},
	}
	picks, err := RecommendPrograms(types.EmotionProfile{Calm: 50, Active: 50, Reflective: 50, Social: 50}, clones)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(picks); !reflect.DeepEqual(got, []string{"c1", "c2", "c3"}) {
		t.Errorf("picks = %v, want catalog order", got)
	}
}

func TestRecommendProgramsPrefersUnseenCategoryAndDate(t *testing.T) {
	profile := types.EmotionProfile{Calm: 100, Active: 0, Reflective: 0, Social: 0}
	programs := []types.Program{
		{ID: "best", Title: "best", Category: "talk", Date: "d1", EmotionMatch: affinity(100, 0, 0, 0)},
		{ID: "near-same", Title: "near-same", Category: "talk", Date: "d1", EmotionMatch: affinity(95, 0, 0, 0)},
		{ID: "far-fresh", Title: "far-fresh", Category: "walk", Date: "d2", EmotionMatch: affinity(90, 0, 0, 0)},
		{ID: "farther", Title: "farther", Category: "talk", Date: "d1", EmotionMatch: affinity(80, 0, 0, 0)},
	}
	picks, err := RecommendPrograms(profile, programs)
	if err != nil {
		t.Fatal(err)
	}
	if picks[0].ID != "best" {
		t.Fatalf("first pick = %s, want best", picks[0].ID)
	}
	found := false
	for _, p := range picks {
		if p.ID == "far-fresh" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the fresh category/date program among %v", ids(picks))
	}
}

func ids(programs []types.Program) []string {
	out := make([]string, len(programs))
	for i, p := range programs {
		out[i] = p.ID
	}
	return out
}
