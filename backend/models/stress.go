package models

import "gorm.io/gorm"

type MoodCheckin struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	MoodScore int    `json:"mood_score"` // 1-5
	Notes     string `gorm:"type:text" json:"notes"`
}

type StressJournal struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	EntryText string `gorm:"type:text" json:"entry_text"`
}
