package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OnboardingData stores the quiz answers and the generated recommendation
// text, one row per user (resubmitting replaces the previous answers).
type OnboardingData struct {
	gorm.Model
	UserID          uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Categories      datatypes.JSON `json:"categories"`
	PhysicalGoals   datatypes.JSON `json:"physical_goals"`
	StudyGoals      datatypes.JSON `json:"study_goals"`
	FocusGoals      datatypes.JSON `json:"focus_goals"`
	StressGoals     datatypes.JSON `json:"stress_goals"`
	Recommendations string         `gorm:"type:text" json:"recommendations"`
	CompletedAt     time.Time      `json:"completed_at"`
}
