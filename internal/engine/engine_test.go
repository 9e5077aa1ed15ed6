package engine

import (
	"errors"
	"testing"

	"github.com/wowbook/clarity-backend/internal/types"
)

func pick(questionID string, values ...string) types.Answer {
	return types.Answer{QuestionID: questionID, Values: values}
}

func note(text string) types.Answer {
	return types.Answer{QuestionID: "q13", Text: text}
}

func TestValidateRejectsMalformedSubmissions(t *testing.T) {
	cases := []struct {
		name    string
		answers []types.Answer
	}{
		{"unknown question", []types.Answer{pick("q99", "q1-a1")}},
		{"unknown option value", []types.Answer{pick("q1", "q1-a9")}},
		{"value from another question", []types.Answer{pick("q1", "q2-a1")}},
		{"question answered twice", []types.Answer{pick("q1", "q1-a1"), pick("q1", "q1-a2")}},
		{"single with two selections", []types.Answer{pick("q1", "q1-a1", "q1-a3")}},
		{"single with no selection", []types.Answer{pick("q1")}},
		{"multiple with no selection", []types.Answer{pick("q4")}},
		{"multiple over maxSelect", []types.Answer{pick("q4", "q4-a1", "q4-a2", "q4-a3")}},
		{"duplicate selection", []types.Answer{pick("q4", "q4-a1", "q4-a1")}},
		{"free text as list", []types.Answer{{QuestionID: "q13", Values: []string{"a", "b"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.answers)
			var malformed *MalformedAnswerError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedAnswerError, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsPartialSubmissions(t *testing.T) {
	answers := []types.Answer{
		pick("q1", "q1-a1"),
		pick("q4", "q4-a1", "q4-a2"),
		note("오늘은 흐림"),
	}
	if err := Validate(answers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("empty submission should validate, got %v", err)
	}
}
