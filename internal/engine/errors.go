package engine

import "fmt"

// MalformedAnswerError rejects a submission whose answers do not line up
// with the question catalog. The whole submission is refused, nothing is
// scored partially.
type MalformedAnswerError struct {
	QuestionID string
	Reason     string
}

func (e *MalformedAnswerError) Error() string {
	return fmt.Sprintf("malformed answer for question %q: %s", e.QuestionID, e.Reason)
}

// InsufficientCatalogError means the program catalog is too small to produce
// a full recommendation set.
type InsufficientCatalogError struct {
	Available int
	Required  int
}

func (e *InsufficientCatalogError) Error() string {
	return fmt.Sprintf("program catalog has %d entries, need at least %d", e.Available, e.Required)
}
