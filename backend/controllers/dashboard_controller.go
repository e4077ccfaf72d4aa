package controllers

import (
	"time"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg}
}

// GetStatsOverview aggregates the last 7 days of activity for the dashboard.
func (dc *DashboardController) GetStatsOverview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	today := utils.DateOnly(time.Now())
	weekAgo := today.AddDate(0, 0, -6)
	weekAgoTime := time.Now().AddDate(0, 0, -6)

	var workouts []models.WorkoutSession
	if err := dc.DB.Where("user_id = ? AND start_time >= ?", user.ID, weekAgoTime).
		Find(&workouts).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	calories := make([]float64, 0, len(workouts))
	for _, w := range workouts {
		calories = append(calories, w.TotalCaloriesBurned)
	}

	var studies []models.StudySession
	if err := dc.DB.Where("user_id = ? AND start_time >= ?", user.ID, weekAgoTime).
		Find(&studies).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	var studySeconds int
	for _, s := range studies {
		studySeconds += s.TotalDuration
	}

	var streak models.StudyStreak
	currentStreak := 0
	if err := dc.DB.Where("user_id = ?", user.ID).First(&streak).Error; err == nil {
		currentStreak = streak.CurrentStreak
	}

	var moods []models.MoodCheckin
	if err := dc.DB.Where("user_id = ? AND created_at >= ?", user.ID, weekAgoTime).
		Find(&moods).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	moodScores := make([]float64, 0, len(moods))
	for _, m := range moods {
		moodScores = append(moodScores, float64(m.MoodScore))
	}

	var waterEntries []models.WaterIntake
	if err := dc.DB.Where("user_id = ? AND date >= ? AND date <= ?", user.ID, weekAgo, today).
		Find(&waterEntries).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	var totalGlasses int
	for _, entry := range waterEntries {
		totalGlasses += entry.Glasses
	}

	var focusCount int64
	if err := dc.DB.Model(&models.FocusSession{}).
		Where("user_id = ? AND completed_at >= ?", user.ID, weekAgoTime).
		Count(&focusCount).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"workouts_this_week":         len(workouts),
		"study_hours_this_week":      services.Round2(float64(studySeconds) / 3600),
		"current_study_streak":       currentStreak,
		"avg_mood_7days":             services.Average(moodScores),
		"water_avg_7days":            services.Round2(float64(totalGlasses) / 7),
		"focus_sessions_this_week":   focusCount,
		"total_calories_burned_week": services.Round2(services.Sum(calories)),
	})
}
