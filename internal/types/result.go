package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JourneyStep struct {
	Icon    string `json:"icon"`
	Keyword string `json:"keyword"`
	Action  string `json:"action"`
	Date    string `json:"date"`
}

// RecommendationResult is the full analysis payload returned to the client
// and persisted verbatim as the result JSON of an AnalysisResult row.
type RecommendationResult struct {
	ClarityType         *ClarityType      `json:"clarityType,omitempty"`
	RecommendedPrograms []Program         `json:"recommendedPrograms"`
	ProgramReasons      map[string]string `json:"programReasons"`
	UserEmotionProfile  EmotionProfile    `json:"userEmotionProfile"`
	Clarity             int               `json:"clarity"`
	Message             string            `json:"message"`
	Journey             []JourneyStep     `json:"journey"`
}

type AnalysisResult struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	Fingerprint string         `gorm:"index" json:"-"`
	Result      datatypes.JSON `gorm:"not null" json:"result"`
	Answers     datatypes.JSON `gorm:"not null" json:"answers"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (AnalysisResult) TableName() string { return "analysis_results" }

func (r *AnalysisResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
