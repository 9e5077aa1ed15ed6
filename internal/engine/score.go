package engine

import (
	"unicode/utf8"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

const (
	moodBaseDefault = 50

	concernFatigueAdjust = -5
	concernTraumaAdjust  = -10
	concernFutureAdjust  = 5

	// Picking a handful of coping methods reads as self-awareness. One or
	// none is too little signal, five or more is scattershot.
	copingSweetSpotMin   = 2
	copingSweetSpotMax   = 4
	copingSweetSpotBonus = 5

	needPeaceAdjust   = 10
	needInsightAdjust = 8
	needActionAdjust  = -5

	longNoteRunes  = 100
	longNoteBonus  = 10
	shortNoteRunes = 20
	shortNotePenalty = -5

	scoreFloor = 0
	scoreCeil  = 100
)

var moodBase = map[string]int{
	"sunny":         90,
	"partly-cloudy": 70,
	"cloudy":        50,
	"rainy":         35,
	"stormy":        20,
}

// ComputeClarityScore turns the state-of-mind answers into a 0-100 index.
// Absent designated answers simply contribute nothing beyond the base.
func ComputeClarityScore(answers []types.Answer) (int, error) {
	selections, err := resolveSelections(answers)
	if err != nil {
		return 0, err
	}

	base := moodBaseDefault
	if picked := selections[catalog.QuestionMood]; len(picked) == 1 {
		if v, ok := moodBase[picked[0].Value]; ok {
			base = v
		}
	}

	adjust := 0
	if picked := selections[catalog.QuestionConcern]; len(picked) == 1 {
		switch picked[0].Value {
		case "fatigue":
			adjust += concernFatigueAdjust
		case "trauma":
			adjust += concernTraumaAdjust
		case "future":
			adjust += concernFutureAdjust
		}
	}

	if n := len(selections[catalog.QuestionCoping]); n >= copingSweetSpotMin && n <= copingSweetSpotMax {
		adjust += copingSweetSpotBonus
	}

	if picked := selections[catalog.QuestionNeed]; len(picked) == 1 {
		switch picked[0].Value {
		case "peace":
			adjust += needPeaceAdjust
		case "insight":
			adjust += needInsightAdjust
		case "action":
			adjust += needActionAdjust
		}
	}

	if note, ok := freeTextAnswer(answers); ok {
		switch n := utf8.RuneCountInString(note); {
		case n > longNoteRunes:
			adjust += longNoteBonus
		case n < shortNoteRunes:
			adjust += shortNotePenalty
		}
	}

	score := base + adjust
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeil {
		score = scoreCeil
	}
	return score, nil
}
