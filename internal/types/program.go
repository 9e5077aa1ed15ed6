package types

// EmotionProfile is the user's aggregated 4-dimensional tendency vector,
// max-normalized so the dominant dimension reads 100.
type EmotionProfile struct {
	Calm       int `json:"calm"`
	Active     int `json:"active"`
	Reflective int `json:"reflective"`
	Social     int `json:"social"`
}

// EmotionAffinity is the same vector attached to a recommendable program.
type EmotionAffinity struct {
	Calm       int `json:"calm" yaml:"calm"`
	Active     int `json:"active" yaml:"active"`
	Reflective int `json:"reflective" yaml:"reflective"`
	Social     int `json:"social" yaml:"social"`
}

// Program carries yaml tags so operators can swap the catalog out for the
// next festival edition without a rebuild.
type Program struct {
	ID             string          `json:"id" yaml:"id"`
	Title          string          `json:"title" yaml:"title"`
	Category       string          `json:"category" yaml:"category"`
	Date           string          `json:"date" yaml:"date"`
	Time           string          `json:"time" yaml:"time"`
	Location       string          `json:"location" yaml:"location"`
	Description    string          `json:"description" yaml:"description"`
	Tags           []string        `json:"tags" yaml:"tags"`
	ReservationURL string          `json:"reservationUrl,omitempty" yaml:"reservationUrl,omitempty"`
	EmotionMatch   EmotionAffinity `json:"emotionMatch" yaml:"emotionMatch"`
}
