package types

type QuestionKind string

const (
	QuestionSingle   QuestionKind = "single"
	QuestionMultiple QuestionKind = "multiple"
	QuestionFreeText QuestionKind = "text"
)

// Axis is one of the four binary dimensions behind the 16 clarity types.
type Axis string

const (
	AxisNone     Axis = ""
	AxisSpace    Axis = "I/O" // alone vs. together
	AxisEnergy   Axis = "B/G" // calm vs. dynamic
	AxisFocus    Axis = "S/L" // depth vs. breadth
	AxisLanguage Axis = "C/W" // rational vs. emotional
)

type Emotion string

const (
	EmotionNone       Emotion = ""
	EmotionCalm       Emotion = "calm"
	EmotionActive     Emotion = "active"
	EmotionReflective Emotion = "reflective"
	EmotionSocial     Emotion = "social"
)

type Option struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Value      string  `json:"value"`
	Weight     int     `json:"score"`
	Emotion    Emotion `json:"emotion,omitempty"`
	AxisLetter string  `json:"axisLetter,omitempty"`
}

type Question struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Kind        QuestionKind `json:"type"`
	Step        int          `json:"step"`
	Axis        Axis         `json:"axis,omitempty"`
	MaxSelect   int          `json:"maxSelect,omitempty"`
	Options     []Option     `json:"options,omitempty"`
}
