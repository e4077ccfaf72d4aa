package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FocusSession struct {
	gorm.Model
	UserID           uint           `gorm:"index;not null" json:"user_id"`
	SessionType      string         `json:"session_type"` // breathing, meditation, ambient
	Duration         int            `json:"duration"`     // seconds
	BreathingPattern datatypes.JSON `json:"breathing_pattern"`
	AmbientSound     string         `json:"ambient_sound"`
	CompletedAt      time.Time      `json:"completed_at"`
}

type GratitudeEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	EntryText string    `gorm:"type:text" json:"entry_text"`
	Date      time.Time `gorm:"index" json:"date"`
}
