package engine

import (
	"sort"
	"strings"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

// Fingerprint canonicalizes a submission so the same effective answer
// combination always maps to the same key. Free-text answers are excluded;
// selection order and answer order are irrelevant.
func Fingerprint(answers []types.Answer) string {
	parts := make([]string, 0, len(answers))
	for _, ans := range answers {
		if q, ok := catalog.QuestionByID(ans.QuestionID); ok && q.Kind == types.QuestionFreeText {
			continue
		}
		values := append([]string(nil), ans.Values...)
		sort.Strings(values)
		parts = append(parts, ans.QuestionID+":"+strings.Join(values, ","))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
