package engine

import (
	"strings"
	"testing"

	"github.com/wowbook/clarity-backend/internal/types"
)

func TestComputeClarityScore(t *testing.T) {
	cases := []struct {
		name    string
		answers []types.Answer
		want    int
	}{
		{"no answers uses the default base", nil, 50},
		{
			"sunny mood and peace",
			[]types.Answer{pick("q9", "sunny"), pick("q12", "peace")},
			100,
		},
		{
			"stormy mood with trauma",
			[]types.Answer{pick("q9", "stormy"), pick("q10", "trauma")},
			10,
		},
		{
			"future concern lifts the score",
			[]types.Answer{pick("q9", "cloudy"), pick("q10", "future")},
			55,
		},
		{
			"coping sweet spot",
			[]types.Answer{pick("q11", "walk", "music", "talk")},
			55,
		},
		{
			"one coping method earns no bonus",
			[]types.Answer{pick("q11", "walk")},
			50,
		},
		{
			"long note lifts the score",
			[]types.Answer{pick("q9", "rainy"), note(strings.Repeat("가", 101))},
			45,
		},
		{
			"short note lowers the score",
			[]types.Answer{pick("q9", "rainy"), note("짧은 메모")},
			30,
		},
		{
			"boundary note length is neutral",
			[]types.Answer{note(strings.Repeat("가", 20))},
			50,
		},
		{
			"clamped at the ceiling",
			[]types.Answer{pick("q9", "sunny"), pick("q12", "peace"), pick("q11", "walk", "music")},
			100,
		},
		{
			"clamped at the floor",
			[]types.Answer{pick("q9", "stormy"), pick("q10", "trauma"), pick("q12", "action"), note("짧음")},
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeClarityScore(tc.answers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
			if got < scoreFloor || got > scoreCeil {
				t.Errorf("score %d out of [%d,%d]", got, scoreFloor, scoreCeil)
			}
		})
	}
}

func TestComputeClarityScoreRejectsMalformed(t *testing.T) {
	if _, err := ComputeClarityScore([]types.Answer{pick("q9", "blizzard")}); err == nil {
		t.Fatal("expected error for unknown mood value")
	}
}
