package engine

import (
	"fmt"
	"strings"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

// Validate checks a submission against the question catalog without scoring
// anything. Calculators run the same resolution internally, so a submission
// that passes Validate cannot fail later.
func Validate(answers []types.Answer) error {
	_, err := resolveSelections(answers)
	return err
}

// resolveSelections maps each answered question to its selected options, in
// the question's own option order. Free text questions resolve to no options.
func resolveSelections(answers []types.Answer) (map[string][]*types.Option, error) {
	selections := make(map[string][]*types.Option, len(answers))
	for _, ans := range answers {
		q, ok := catalog.QuestionByID(ans.QuestionID)
		if !ok {
			return nil, &MalformedAnswerError{QuestionID: ans.QuestionID, Reason: "unknown question"}
		}
		if _, dup := selections[q.ID]; dup {
			return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: "answered more than once"}
		}

		switch q.Kind {
		case types.QuestionFreeText:
			if len(ans.Values) > 1 {
				return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: "free text answer must be a single string"}
			}
			selections[q.ID] = nil
			continue
		case types.QuestionSingle:
			if len(ans.Values) != 1 {
				return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: "exactly one selection required"}
			}
		case types.QuestionMultiple:
			if len(ans.Values) == 0 {
				return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: "at least one selection required"}
			}
			if q.MaxSelect > 0 && len(ans.Values) > q.MaxSelect {
				return nil, &MalformedAnswerError{
					QuestionID: q.ID,
					Reason:     fmt.Sprintf("at most %d selections allowed, got %d", q.MaxSelect, len(ans.Values)),
				}
			}
		default:
			return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: "unsupported question kind"}
		}

		seen := make(map[string]struct{}, len(ans.Values))
		for _, v := range ans.Values {
			if _, dup := seen[v]; dup {
				return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: fmt.Sprintf("value %q selected twice", v)}
			}
			seen[v] = struct{}{}
			if _, ok := catalog.OptionByValue(q.ID, v); !ok {
				return nil, &MalformedAnswerError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown option value %q", v)}
			}
		}

		picked := make([]*types.Option, 0, len(ans.Values))
		for i := range q.Options {
			opt := &q.Options[i]
			if _, ok := seen[opt.Value]; ok {
				picked = append(picked, opt)
			}
		}
		selections[q.ID] = picked
	}
	return selections, nil
}

// freeTextAnswer extracts the trimmed free-text answer, if any.
func freeTextAnswer(answers []types.Answer) (string, bool) {
	for _, ans := range answers {
		q, ok := catalog.QuestionByID(ans.QuestionID)
		if !ok || q.Kind != types.QuestionFreeText {
			continue
		}
		text := ans.Text
		if text == "" && len(ans.Values) == 1 {
			text = ans.Values[0]
		}
		return strings.TrimSpace(text), true
	}
	return "", false
}
