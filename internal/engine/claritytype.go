package engine

import (
	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

var classifierAxes = []types.Axis{
	types.AxisSpace,
	types.AxisEnergy,
	types.AxisFocus,
	types.AxisLanguage,
}

// ComputeClarityType resolves the 4-letter type code. Per axis the option
// weights of both letters are summed over every selected option of that
// axis's questions. Larger total wins. A tied nonzero axis falls to the
// letter of the first selected option in catalog order; an axis with no
// signal at all falls to its first letter.
func ComputeClarityType(answers []types.Answer) (types.ClarityTypeCode, error) {
	selections, err := resolveSelections(answers)
	if err != nil {
		return "", err
	}

	totals := map[string]int{}
	firstLetter := map[types.Axis]string{}
	for _, q := range catalog.Questions() {
		if q.Axis == types.AxisNone {
			continue
		}
		for _, opt := range selections[q.ID] {
			if opt.AxisLetter == "" {
				continue
			}
			totals[opt.AxisLetter] += opt.Weight
			if _, ok := firstLetter[q.Axis]; !ok {
				firstLetter[q.Axis] = opt.AxisLetter
			}
		}
	}

	code := make([]byte, 0, len(classifierAxes))
	for _, axis := range classifierAxes {
		// Axis reads "I/O": byte 0 and byte 2 are the two letters.
		left, right := string(axis[0]), string(axis[2])
		switch {
		case totals[left] > totals[right]:
			code = append(code, left[0])
		case totals[right] > totals[left]:
			code = append(code, right[0])
		case totals[left] == 0:
			code = append(code, left[0])
		default:
			code = append(code, firstLetter[axis][0])
		}
	}
	return types.ClarityTypeCode(code), nil
}
