package controllers

import (
	"errors"
	"time"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkoutController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewWorkoutController(db *gorm.DB, cfg *config.Config) *WorkoutController {
	return &WorkoutController{DB: db, Cfg: cfg}
}

func (wc *WorkoutController) StartWorkout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	workout := models.WorkoutSession{
		UserID:    user.ID,
		StartTime: time.Now(),
	}
	if err := wc.DB.Create(&workout).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": workout.ID,
		"start_time": workout.StartTime.Format(time.RFC3339),
	})
}

// LogExercise appends an exercise to a workout session and adds its calories
// to the session total. Both writes commit together or not at all.
func (wc *WorkoutController) LogExercise(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid session id")
	}

	var input struct {
		ExerciseType   string   `json:"exercise_type"`
		Reps           *int     `json:"reps"`
		Duration       *int     `json:"duration"`
		CaloriesBurned *float64 `json:"calories_burned"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.ExerciseType == "" || input.Reps == nil || input.Duration == nil || input.CaloriesBurned == nil {
		return utils.BadRequest(c, "All fields are required")
	}
	if *input.Reps < 0 || *input.Reps > 1000 {
		return utils.BadRequest(c, "Reps must be between 0 and 1000")
	}

	var exercise models.Exercise
	err = wc.DB.Transaction(func(tx *gorm.DB) error {
		var workout models.WorkoutSession
		if err := tx.First(&workout, sessionID).Error; err != nil {
			return err
		}
		if workout.UserID != user.ID {
			return gorm.ErrRecordNotFound
		}

		exercise = models.Exercise{
			SessionID:      workout.ID,
			ExerciseType:   input.ExerciseType,
			Reps:           *input.Reps,
			Duration:       *input.Duration,
			CaloriesBurned: *input.CaloriesBurned,
			CompletedAt:    time.Now(),
		}
		if err := tx.Create(&exercise).Error; err != nil {
			return err
		}

		workout.TotalCaloriesBurned += *input.CaloriesBurned
		return tx.Save(&workout).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Workout session not found")
		}
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Exercise logged successfully",
		"exercise_id":  exercise.ID,
		"completed_at": exercise.CompletedAt.Format(time.RFC3339),
	})
}

func (wc *WorkoutController) CompleteWorkout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid session id")
	}

	var workout models.WorkoutSession
	if err := wc.DB.First(&workout, sessionID).Error; err != nil || workout.UserID != user.ID {
		return utils.NotFound(c, "Workout session not found")
	}

	now := time.Now()
	workout.EndTime = &now
	workout.TotalDuration = int(now.Sub(workout.StartTime).Seconds())
	if err := wc.DB.Save(&workout).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Workout completed successfully",
		"total_duration": workout.TotalDuration,
		"total_calories": workout.TotalCaloriesBurned,
	})
}

func (wc *WorkoutController) GetWorkoutHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var workouts []models.WorkoutSession
	if err := wc.DB.Where("user_id = ?", user.ID).
		Order("start_time DESC").
		Limit(20).
		Find(&workouts).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	history := make([]fiber.Map, 0, len(workouts))
	for _, workout := range workouts {
		var exercises []models.Exercise
		if err := wc.DB.Where("session_id = ?", workout.ID).Find(&exercises).Error; err != nil {
			return utils.InternalServerError(c, err)
		}

		exercisePayloads := make([]fiber.Map, 0, len(exercises))
		for _, ex := range exercises {
			exercisePayloads = append(exercisePayloads, fiber.Map{
				"id":              ex.ID,
				"exercise_type":   ex.ExerciseType,
				"reps":            ex.Reps,
				"duration":        ex.Duration,
				"calories_burned": ex.CaloriesBurned,
				"completed_at":    ex.CompletedAt.Format(time.RFC3339),
			})
		}

		history = append(history, fiber.Map{
			"id":                    workout.ID,
			"start_time":            workout.StartTime.Format(time.RFC3339),
			"end_time":              formatTimePtr(workout.EndTime),
			"total_duration":        workout.TotalDuration,
			"total_calories_burned": workout.TotalCaloriesBurned,
			"exercises":             exercisePayloads,
		})
	}

	return c.JSON(fiber.Map{"workouts": history})
}

// LogWater records glasses drunk on a calendar day, replacing any earlier
// entry for the same day.
func (wc *WorkoutController) LogWater(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Glasses *int   `json:"glasses"`
		Date    string `json:"date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.Glasses == nil || input.Date == "" {
		return utils.BadRequest(c, "glasses and date are required")
	}
	if *input.Glasses < 0 || *input.Glasses > 20 {
		return utils.BadRequest(c, "Glasses must be between 0 and 20")
	}

	intakeDate, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	}

	var existing models.WaterIntake
	err = wc.DB.Where("user_id = ? AND date = ?", user.ID, intakeDate).First(&existing).Error
	if err == nil {
		existing.Glasses = *input.Glasses
		existing.LoggedAt = time.Now()
		err = wc.DB.Save(&existing).Error
	} else {
		err = wc.DB.Create(&models.WaterIntake{
			UserID:   user.ID,
			Glasses:  *input.Glasses,
			Date:     intakeDate,
			LoggedAt: time.Now(),
		}).Error
	}
	if err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Water intake logged successfully",
		"glasses": *input.Glasses,
		"date":    input.Date,
	})
}

func (wc *WorkoutController) GetWaterToday(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	today := utils.DateOnly(time.Now())

	var water models.WaterIntake
	err := wc.DB.Where("user_id = ? AND date = ?", user.ID, today).First(&water).Error
	if err != nil {
		return c.JSON(fiber.Map{
			"glasses": 0,
			"date":    today.Format(time.DateOnly),
		})
	}

	return c.JSON(fiber.Map{
		"glasses": water.Glasses,
		"date":    water.Date.Format(time.DateOnly),
	})
}

func (wc *WorkoutController) GetWaterWeek(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	today := utils.DateOnly(time.Now())
	weekAgo := today.AddDate(0, 0, -6)

	var entries []models.WaterIntake
	if err := wc.DB.Where("user_id = ? AND date >= ? AND date <= ?", user.ID, weekAgo, today).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{"week": services.FillWaterWeek(entries, weekAgo)})
}

func (wc *WorkoutController) CreateStretchReminder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reminder := models.StretchReminder{
		UserID:     user.ID,
		RemindedAt: time.Now(),
	}
	if err := wc.DB.Create(&reminder).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reminder_id": reminder.ID,
		"reminded_at": reminder.RemindedAt.Format(time.RFC3339),
	})
}

func (wc *WorkoutController) CompleteStretch(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reminderID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid reminder id")
	}

	var reminder models.StretchReminder
	if err := wc.DB.First(&reminder, reminderID).Error; err != nil || reminder.UserID != user.ID {
		return utils.NotFound(c, "Reminder not found")
	}

	now := time.Now()
	reminder.Completed = true
	reminder.CompletedAt = &now
	if err := wc.DB.Save(&reminder).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Stretch completed successfully",
		"completed_at": now.Format(time.RFC3339),
	})
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
