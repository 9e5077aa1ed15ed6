package types

import "encoding/json"

// Answer carries one user response. The wire format matches the front-end:
// {"questionId": "q1", "answer": "q1-a2"} or {"questionId": "q4", "answer": ["q4-a1","q4-a3"]}.
// A bare string is kept in both Values and Text until the question kind
// disambiguates selection from free text.
type Answer struct {
	QuestionID string
	Values     []string
	Text       string
}

type answerWire struct {
	QuestionID string          `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var w answerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.QuestionID = w.QuestionID
	a.Values = nil
	a.Text = ""
	if len(w.Answer) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(w.Answer, &single); err == nil {
		a.Values = []string{single}
		a.Text = single
		return nil
	}
	var many []string
	if err := json.Unmarshal(w.Answer, &many); err != nil {
		return err
	}
	a.Values = many
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	var payload any
	switch {
	case len(a.Values) == 1 && (a.Text == "" || a.Text == a.Values[0]):
		payload = a.Values[0]
	case len(a.Values) > 0:
		payload = a.Values
	default:
		payload = a.Text
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(answerWire{QuestionID: a.QuestionID, Answer: raw})
}
