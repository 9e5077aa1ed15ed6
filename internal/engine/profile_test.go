package engine

import (
	"errors"
	"testing"

	"github.com/wowbook/clarity-backend/internal/types"
)

func TestComputeEmotionProfileUniformWhenNoSignal(t *testing.T) {
	for _, answers := range [][]types.Answer{nil, {note("마음이 복잡해요")}} {
		profile, err := ComputeEmotionProfile(answers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := types.EmotionProfile{Calm: 25, Active: 25, Reflective: 25, Social: 25}
		if profile != want {
			t.Errorf("profile = %+v, want uniform %+v", profile, want)
		}
	}
}

func TestComputeEmotionProfileDominantDimensionIsAlways100(t *testing.T) {
	// Three calm single picks and nothing else.
	answers := []types.Answer{
		pick("q1", "q1-a1"),
		pick("q3", "q3-a1"),
		pick("q6", "q6-a1"),
	}
	profile, err := ComputeEmotionProfile(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := types.EmotionProfile{Calm: 100}
	if profile != want {
		t.Errorf("profile = %+v, want %+v", profile, want)
	}
}

func TestComputeEmotionProfileSinglePickOutweighsSplitMulti(t *testing.T) {
	// q1-a1 gives calm 25. q4 splits 15 across two picks: reflective 7.5
	// (autumn) and calm 7.5 (winter). Calm totals 32.5 and normalizes to
	// 100; reflective rounds to 23.
	answers := []types.Answer{
		pick("q1", "q1-a1"),
		pick("q4", "q4-a1", "q4-a2"),
	}
	profile, err := ComputeEmotionProfile(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := types.EmotionProfile{Calm: 100, Reflective: 23}
	if profile != want {
		t.Errorf("profile = %+v, want %+v", profile, want)
	}
}

func TestComputeEmotionProfileSelectionOrderIrrelevant(t *testing.T) {
	a, err := ComputeEmotionProfile([]types.Answer{pick("q4", "q4-a1", "q4-a3")})
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeEmotionProfile([]types.Answer{pick("q4", "q4-a3", "q4-a1")})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("order changed profile: %+v vs %+v", a, b)
	}
}

func TestComputeEmotionProfileRejectsMalformed(t *testing.T) {
	_, err := ComputeEmotionProfile([]types.Answer{pick("q1", "nope")})
	var malformed *MalformedAnswerError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedAnswerError, got %v", err)
	}
}
