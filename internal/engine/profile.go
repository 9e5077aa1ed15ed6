package engine

import (
	"math"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

const (
	// A single-choice pick is a stronger signal than one of several
	// multi-choice picks, which split a smaller budget between them.
	singleSelectionWeight = 25.0
	multiSelectionBudget  = 15.0

	// Value of every dimension when no answer carries any emotion signal.
	uniformDimensionValue = 25

	profileScale = 100.0
)

// ComputeEmotionProfile aggregates emotion-tagged selections into a
// 4-dimensional profile, max-normalized so the dominant dimension is 100.
func ComputeEmotionProfile(answers []types.Answer) (types.EmotionProfile, error) {
	selections, err := resolveSelections(answers)
	if err != nil {
		return types.EmotionProfile{}, err
	}

	totals := map[types.Emotion]float64{}
	for _, ans := range answers {
		q, _ := catalog.QuestionByID(ans.QuestionID)
		picked := selections[q.ID]
		if len(picked) == 0 {
			continue
		}
		weight := singleSelectionWeight
		if q.Kind == types.QuestionMultiple {
			weight = multiSelectionBudget / float64(len(picked))
		}
		for _, opt := range picked {
			if opt.Emotion != types.EmotionNone {
				totals[opt.Emotion] += weight
			}
		}
	}

	max := 0.0
	for _, v := range totals {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return types.EmotionProfile{
			Calm:       uniformDimensionValue,
			Active:     uniformDimensionValue,
			Reflective: uniformDimensionValue,
			Social:     uniformDimensionValue,
		}, nil
	}

	norm := func(e types.Emotion) int {
		return int(math.Round(totals[e] / max * profileScale))
	}
	return types.EmotionProfile{
		Calm:       norm(types.EmotionCalm),
		Active:     norm(types.EmotionActive),
		Reflective: norm(types.EmotionReflective),
		Social:     norm(types.EmotionSocial),
	}, nil
}
