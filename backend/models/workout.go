package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutSession struct {
	gorm.Model
	UserID              uint       `gorm:"index;not null" json:"user_id"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             *time.Time `json:"end_time"`
	TotalDuration       int        `gorm:"default:0" json:"total_duration"` // seconds
	TotalCaloriesBurned float64    `gorm:"default:0" json:"total_calories_burned"`
}

type Exercise struct {
	gorm.Model
	SessionID      uint      `gorm:"index;not null" json:"session_id"`
	ExerciseType   string    `json:"exercise_type"` // pushup, squat, plank
	Reps           int       `json:"reps"`
	Duration       int       `json:"duration"` // seconds
	CaloriesBurned float64   `json:"calories_burned"`
	CompletedAt    time.Time `json:"completed_at"`
}

// WaterIntake holds one row per user per calendar day. Date is normalized to
// UTC midnight so the (user_id, date) upsert and range queries compare clean.
type WaterIntake struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Glasses  int       `json:"glasses"`
	Date     time.Time `gorm:"index" json:"date"`
	LoggedAt time.Time `json:"logged_at"`
}

type StretchReminder struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	RemindedAt  time.Time  `json:"reminded_at"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}
