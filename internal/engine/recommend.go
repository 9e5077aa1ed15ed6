package engine

import (
	"math"
	"sort"

	"github.com/wowbook/clarity-backend/internal/types"
)

const (
	// RecommendationCount is the fixed size of a recommendation set.
	RecommendationCount = 3

	maxSimilarity = 100.0
	// Worst-case Euclidean distance across four 0-100 dimensions is 200,
	// so halving maps distance onto the similarity scale.
	distanceToSimilarity = 2.0

	newCategoryBonus = 20.0
	newDateBonus     = 10.0
	acceptThreshold  = 40.0
)

type scoredProgram struct {
	program    types.Program
	similarity float64
}

// RecommendPrograms picks three programs for a profile. The best match is
// always first; the rest are chosen greedily with bonuses for unseen
// categories and dates, then backfilled by similarity rank if needed.
func RecommendPrograms(profile types.EmotionProfile, programs []types.Program) ([]types.Program, error) {
	if len(programs) < RecommendationCount {
		return nil, &InsufficientCatalogError{Available: len(programs), Required: RecommendationCount}
	}

	scored := make([]scoredProgram, len(programs))
	for i, p := range programs {
		d := euclidean(profile, p.EmotionMatch)
		scored[i] = scoredProgram{
			program:    p,
			similarity: math.Max(0, maxSimilarity-d/distanceToSimilarity),
		}
	}
	// Stable keeps catalog order among equal scores, so identical profiles
	// always get identical recommendations.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].similarity > scored[j].similarity
	})

	selected := make([]types.Program, 0, RecommendationCount)
	usedCategories := map[string]struct{}{}
	usedDates := map[string]struct{}{}
	take := func(p types.Program) {
		selected = append(selected, p)
		usedCategories[p.Category] = struct{}{}
		usedDates[p.Date] = struct{}{}
	}

	take(scored[0].program)
	for _, item := range scored[1:] {
		if len(selected) >= RecommendationCount {
			break
		}
		bonus := 0.0
		if _, seen := usedCategories[item.program.Category]; !seen {
			bonus += newCategoryBonus
		}
		if _, seen := usedDates[item.program.Date]; !seen {
			bonus += newDateBonus
		}
		if item.similarity+bonus > acceptThreshold || len(selected) < RecommendationCount {
			take(item.program)
		}
	}

	if len(selected) < RecommendationCount {
		picked := map[string]struct{}{}
		for _, p := range selected {
			picked[p.ID] = struct{}{}
		}
		for _, item := range scored {
			if len(selected) >= RecommendationCount {
				break
			}
			if _, ok := picked[item.program.ID]; !ok {
				take(item.program)
				picked[item.program.ID] = struct{}{}
			}
		}
	}
	return selected[:RecommendationCount], nil
}

func euclidean(profile types.EmotionProfile, match types.EmotionAffinity) float64 {
	dc := float64(match.Calm - profile.Calm)
	da := float64(match.Active - profile.Active)
	dr := float64(match.Reflective - profile.Reflective)
	ds := float64(match.Social - profile.Social)
	return math.Sqrt(dc*dc + da*da + dr*dr + ds*ds)
}
