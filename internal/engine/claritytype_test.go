package engine

import (
	"testing"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

func TestComputeClarityType(t *testing.T) {
	cases := []struct {
		name    string
		answers []types.Answer
		want    types.ClarityTypeCode
	}{
		{
			name: "all inward picks",
			answers: []types.Answer{
				pick("q1", "q1-a1"),
				pick("q2", "q2-a1"),
				pick("q3", "q3-a1"),
				pick("q4", "q4-a1", "q4-a2"),
				pick("q5", "q5-a1"),
				pick("q6", "q6-a1"),
				pick("q7", "q7-a1"),
				pick("q8", "q8-a1", "q8-a2"),
			},
			want: "IBSC",
		},
		{
			name: "all outward picks",
			answers: []types.Answer{
				pick("q1", "q1-a2"),
				pick("q2", "q2-a2"),
				pick("q3", "q3-a2"),
				pick("q4", "q4-a3", "q4-a4"),
				pick("q5", "q5-a2"),
				pick("q6", "q6-a2"),
				pick("q7", "q7-a2"),
				pick("q8", "q8-a3", "q8-a4"),
			},
			want: "OGLW",
		},
		{
			name:    "no answers falls to axis defaults",
			answers: nil,
			want:    "IBSC",
		},
		{
			name: "non-axis answers carry no classifier signal",
			answers: []types.Answer{
				pick("q9", "sunny"),
				pick("q12", "connection"),
			},
			want: "IBSC",
		},
		{
			name: "tied axis falls to first selected option in catalog order",
			// I and O both total 2. q1 precedes q2 in the catalog, so the
			// letter of the q1 pick wins.
			answers: []types.Answer{
				pick("q1", "q1-a1"),
				pick("q2", "q2-a2"),
			},
			want: "IBSC",
		},
		{
			name: "tie break follows the other letter when reversed",
			answers: []types.Answer{
				pick("q1", "q1-a2"),
				pick("q2", "q2-a1"),
			},
			want: "OBSC",
		},
		{
			name: "weighted tie across questions falls to the earlier question",
			// q3-a2 scores G with 2, the two q4 picks score B with 1 each:
			// tie again, and q3 comes first in catalog order.
			answers: []types.Answer{
				pick("q3", "q3-a2"),
				pick("q4", "q4-a1", "q4-a2"),
			},
			want: "IGSC",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeClarityType(tc.answers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("type = %s, want %s", got, tc.want)
			}
			if _, ok := catalog.ClarityTypeByCode(got); !ok {
				t.Errorf("type %s is not in the catalog", got)
			}
		})
	}
}

func TestComputeClarityTypeRejectsMalformed(t *testing.T) {
	if _, err := ComputeClarityType([]types.Answer{pick("q1", "q1-a1", "q1-a2")}); err == nil {
		t.Fatal("expected error for over-selection on a single question")
	}
}
