package services

import (
	"math"
	"time"

	"project/backend/models"
	"project/backend/utils"
)

// Round2 rounds to two decimal places, the precision used by every
// dashboard figure.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sum adds up a window of values. Empty window sums to 0.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Average returns the mean of a window rounded to two decimals. An empty
// window averages to 0.0 rather than erroring.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return Round2(Sum(values) / float64(len(values)))
}

// DailyGlasses is one day of the weekly water view.
type DailyGlasses struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
}

// FillWaterWeek expands logged intake rows into exactly seven day slots
// starting at start, oldest first. Days without a row report 0 glasses.
func FillWaterWeek(entries []models.WaterIntake, start time.Time) []DailyGlasses {
	byDay := make(map[time.Time]int, len(entries))
	for _, entry := range entries {
		byDay[utils.DateOnly(entry.Date)] = entry.Glasses
	}

	week := make([]DailyGlasses, 0, 7)
	first := utils.DateOnly(start)
	for i := 0; i < 7; i++ {
		day := first.AddDate(0, 0, i)
		week = append(week, DailyGlasses{
			Date:    day.Format(time.DateOnly),
			Glasses: byDay[day],
		})
	}
	return week
}
