package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeatherMood string

const (
	MoodSunny        WeatherMood = "sunny"
	MoodPartlyCloudy WeatherMood = "partly-cloudy"
	MoodCloudy       WeatherMood = "cloudy"
	MoodRainy        WeatherMood = "rainy"
	MoodStormy       WeatherMood = "stormy"
	MoodSnowy        WeatherMood = "snowy"
)

func (m WeatherMood) Valid() bool {
	switch m {
	case MoodSunny, MoodPartlyCloudy, MoodCloudy, MoodRainy, MoodStormy, MoodSnowy:
		return true
	}
	return false
}

// WeatherDiary is one post-program mood entry left by a visitor.
type WeatherDiary struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;index;not null" json:"userId"`
	ProgramID    string      `gorm:"index;not null" json:"programId"`
	ProgramTitle string      `json:"programTitle"`
	Mood         WeatherMood `gorm:"not null" json:"mood"`
	Content      string      `json:"content"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (WeatherDiary) TableName() string { return "weather_diaries" }

func (d *WeatherDiary) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type ProgramStats struct {
	ProgramID        string              `json:"programId"`
	ProgramTitle     string              `json:"programTitle"`
	TotalDiaries     int                 `json:"totalDiaries"`
	UniqueUsers      int                 `json:"uniqueUsers"`
	MoodDistribution map[WeatherMood]int `json:"moodDistribution"`
	TopMood          WeatherMood         `json:"topMood"`
}

type AdminStats struct {
	TotalDiaries int            `json:"totalDiaries"`
	TotalUsers   int            `json:"totalUsers"`
	Programs     []ProgramStats `json:"programs"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type KeywordAnalysis struct {
	ProgramID string         `json:"programId"`
	Keywords  []KeywordCount `json:"keywords"`
	Summary   string         `json:"summary"`
}
