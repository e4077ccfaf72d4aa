package models

import (
	"time"

	"gorm.io/gorm"
)

type StudySession struct {
	gorm.Model
	UserID           uint       `gorm:"index;not null" json:"user_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	TotalDuration    int        `gorm:"default:0" json:"total_duration"` // seconds
	PomodoroCount    int        `gorm:"default:0" json:"pomodoro_count"`
	DistractionCount int        `gorm:"default:0" json:"distraction_count"`
}

type StudyTask struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	SessionID     *uint      `json:"session_id"`
	TaskName      string     `gorm:"size:200" json:"task_name"`
	EstimatedTime int        `json:"estimated_time"` // minutes
	ActualTime    *int       `json:"actual_time"`    // minutes
	Completed     bool       `gorm:"default:false" json:"completed"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// StudyStreak tracks consecutive study days, one row per user.
// CurrentStreak never exceeds LongestStreak.
type StudyStreak struct {
	gorm.Model
	UserID        uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	LongestStreak int        `gorm:"default:0" json:"longest_streak"`
	LastStudyDate *time.Time `json:"last_study_date"`
}
