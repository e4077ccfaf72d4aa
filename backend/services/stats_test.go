package services

import (
	"testing"
	"time"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestAverageEmptyWindow(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]float64{}))
}

func TestAverageRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 3.33, Average([]float64{3, 3, 4}))
	assert.Equal(t, 2.67, Average([]float64{2, 3, 3}))
	assert.Equal(t, 5.0, Average([]float64{5}))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 7.5, Sum([]float64{2.5, 5}))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, 0.0, Round2(0))
}

func TestFillWaterWeekAlwaysSevenDays(t *testing.T) {
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	week := FillWaterWeek(nil, start)
	assert.Len(t, week, 7)
	for _, slot := range week {
		assert.Equal(t, 0, slot.Glasses)
	}
	assert.Equal(t, "2025-03-10", week[0].Date)
	assert.Equal(t, "2025-03-16", week[6].Date)
}

func TestFillWaterWeekLeftFillsGaps(t *testing.T) {
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	entries := []models.WaterIntake{
		{Glasses: 8, Date: start},
		{Glasses: 3, Date: start.AddDate(0, 0, 3)},
	}

	week := FillWaterWeek(entries, start)
	assert.Len(t, week, 7)

	for i, slot := range week {
		switch i {
		case 0:
			assert.Equal(t, 8, slot.Glasses)
		case 3:
			assert.Equal(t, 3, slot.Glasses)
		default:
			assert.Equal(t, 0, slot.Glasses)
		}
	}

	// Oldest to newest ordering.
	for i := 1; i < len(week); i++ {
		assert.Less(t, week[i-1].Date, week[i].Date)
	}
}

// An entry whose timestamp carries a non-UTC location still lands in the
// slot for the UTC day it denotes.
func TestFillWaterWeekIgnoresTimeLocation(t *testing.T) {
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	eastern := time.FixedZone("UTC-5", -5*60*60)
	entries := []models.WaterIntake{
		{Glasses: 8, Date: start.In(eastern)},
	}

	week := FillWaterWeek(entries, start)
	assert.Len(t, week, 7)
	assert.Equal(t, "2025-03-10", week[0].Date)
	assert.Equal(t, 8, week[0].Glasses)
}
