package engine

import (
	"testing"

	"github.com/wowbook/clarity-backend/internal/types"
)

func TestFingerprintIgnoresOrderAndFreeText(t *testing.T) {
	a := []types.Answer{
		pick("q1", "q1-a1"),
		pick("q4", "q4-a1", "q4-a3"),
		note("오늘은 마음이 복잡했다"),
	}
	b := []types.Answer{
		note("전혀 다른 텍스트"),
		pick("q4", "q4-a3", "q4-a1"),
		pick("q1", "q1-a1"),
	}
	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("equivalent submissions produced different fingerprints:\n%s\n%s", Fingerprint(a), Fingerprint(b))
	}
}

func TestFingerprintSeparatesDifferentSelections(t *testing.T) {
	a := Fingerprint([]types.Answer{pick("q1", "q1-a1")})
	b := Fingerprint([]types.Answer{pick("q1", "q1-a2")})
	if a == b {
		t.Error("different selections collided")
	}
	if a == Fingerprint(nil) {
		t.Error("answered submission collided with empty one")
	}
}

func TestFingerprintFormat(t *testing.T) {
	got := Fingerprint([]types.Answer{
		pick("q4", "q4-a3", "q4-a1"),
		pick("q1", "q1-a2"),
	})
	want := "q1:q1-a2|q4:q4-a1,q4-a3"
	if got != want {
		t.Errorf("fingerprint = %q, want %q", got, want)
	}
}
