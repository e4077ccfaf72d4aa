package services

import (
	"testing"
	"time"

	"project/backend/models"
	"project/backend/utils"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	base := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func streakOn(current, longest, lastOffset int) models.StudyStreak {
	last := day(lastOffset)
	return models.StudyStreak{
		CurrentStreak: current,
		LongestStreak: longest,
		LastStudyDate: &last,
	}
}

func TestAdvanceStreakFirstEver(t *testing.T) {
	streak := models.StudyStreak{}
	AdvanceStreak(&streak, day(0))

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.True(t, streak.LastStudyDate.Equal(day(0)))
}

func TestAdvanceStreakSameDayIdempotent(t *testing.T) {
	streak := streakOn(1, 1, 0)
	AdvanceStreak(&streak, day(0))

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.True(t, streak.LastStudyDate.Equal(day(0)))
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	streak := streakOn(1, 1, 0)
	AdvanceStreak(&streak, day(1))

	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
	assert.True(t, streak.LastStudyDate.Equal(day(1)))
}

func TestAdvanceStreakGapResetsKeepingLongest(t *testing.T) {
	streak := streakOn(2, 2, 1)
	AdvanceStreak(&streak, day(4))

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
	assert.True(t, streak.LastStudyDate.Equal(day(4)))
}

// The full scenario from a cold start: D, D again, D+1, then skip to D+3.
func TestAdvanceStreakScenario(t *testing.T) {
	streak := models.StudyStreak{}

	AdvanceStreak(&streak, day(0))
	AdvanceStreak(&streak, day(0))
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)

	AdvanceStreak(&streak, day(1))
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)

	AdvanceStreak(&streak, day(3))
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
}

func TestAdvanceStreakFutureLastDateIsNoop(t *testing.T) {
	streak := streakOn(3, 5, 2)
	AdvanceStreak(&streak, day(0))

	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Equal(t, 5, streak.LongestStreak)
	assert.True(t, streak.LastStudyDate.Equal(day(2)))
}

func TestAdvanceStreakNeverExceedsLongest(t *testing.T) {
	streak := models.StudyStreak{}
	for offset := 0; offset < 10; offset++ {
		AdvanceStreak(&streak, day(offset))
		assert.LessOrEqual(t, streak.CurrentStreak, streak.LongestStreak)
	}
	assert.Equal(t, 10, streak.CurrentStreak)
	assert.Equal(t, 10, streak.LongestStreak)
}

func TestAdvanceStreakIgnoresTimeOfDay(t *testing.T) {
	streak := models.StudyStreak{}
	AdvanceStreak(&streak, day(0).Add(23*time.Hour))
	AdvanceStreak(&streak, day(1).Add(2*time.Minute))

	assert.Equal(t, 2, streak.CurrentStreak)
	assert.True(t, streak.LastStudyDate.Equal(utils.DateOnly(day(1))))
}

func TestRecordStudyDayCreatesRow(t *testing.T) {
	db := newTestDB(t)

	streak, err := RecordStudyDay(db, 7, day(0))
	assert.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)

	var stored models.StudyStreak
	assert.NoError(t, db.Where("user_id = ?", 7).First(&stored).Error)
	assert.Equal(t, 1, stored.CurrentStreak)
}

func TestRecordStudyDayAdvancesExistingRow(t *testing.T) {
	db := newTestDB(t)

	_, err := RecordStudyDay(db, 7, day(0))
	assert.NoError(t, err)

	streak, err := RecordStudyDay(db, 7, day(1))
	assert.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)

	// One row per user, not one per study day.
	var count int64
	db.Model(&models.StudyStreak{}).Where("user_id = ?", 7).Count(&count)
	assert.EqualValues(t, 1, count)
}
