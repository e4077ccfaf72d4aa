package services

import (
	"errors"
	"time"

	"project/backend/models"
	"project/backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdvanceStreak applies one completed study day to a streak record.
// Transitions, comparing last study date against today:
//   - no previous date: current=1, longest=max(longest, 1)
//   - same day: no change (several sessions per day count once)
//   - exactly yesterday: current+1, longest raised if passed
//   - older gap: current resets to 1, longest keeps its record
//   - future date (clock skew): no change
func AdvanceStreak(streak *models.StudyStreak, today time.Time) {
	day := utils.DateOnly(today)

	if streak.LastStudyDate == nil {
		streak.CurrentStreak = 1
		if streak.LongestStreak < 1 {
			streak.LongestStreak = 1
		}
		streak.LastStudyDate = &day
		return
	}

	last := utils.DateOnly(*streak.LastStudyDate)
	switch {
	case last.Equal(day):
		// Already counted today.
	case last.AddDate(0, 0, 1).Equal(day):
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastStudyDate = &day
	case last.After(day):
		// A recorded date ahead of the clock is left alone rather than
		// treated as a gap.
	default:
		streak.CurrentStreak = 1
		streak.LastStudyDate = &day
	}
}

// RecordStudyDay advances the user's streak for the given day inside tx.
// The streak row is read under a row lock so concurrent session completions
// for the same user cannot lose an update. Call within a transaction.
func RecordStudyDay(tx *gorm.DB, userID uint, today time.Time) (*models.StudyStreak, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		// sqlite has no SELECT ... FOR UPDATE; it serializes writers itself.
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var streak models.StudyStreak
	err := query.Where("user_id = ?", userID).
		First(&streak).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		streak = models.StudyStreak{UserID: userID}
	}

	AdvanceStreak(&streak, today)

	if err := tx.Save(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}
