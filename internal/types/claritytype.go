package types

// ClarityTypeCode is a 4-letter axis code: I/O, B/G, S/L, C/W.
type ClarityTypeCode string

type ClarityType struct {
	Code            ClarityTypeCode `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Characteristics []string        `json:"characteristics"`
	Emoji           string          `json:"emoji"`
	Color           string          `json:"color"`
	BestMatch       ClarityTypeCode `json:"bestMatch"`
	ConflictMatch   ClarityTypeCode `json:"conflictMatch"`
}
