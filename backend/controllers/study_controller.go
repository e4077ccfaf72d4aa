package controllers

import (
	"time"
	"unicode/utf8"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudyController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudyController(db *gorm.DB, cfg *config.Config) *StudyController {
	return &StudyController{DB: db, Cfg: cfg}
}

func (sc *StudyController) StartStudy(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	study := models.StudySession{
		UserID:    user.ID,
		StartTime: time.Now(),
	}
	if err := sc.DB.Create(&study).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": study.ID,
		"start_time": study.StartTime.Format(time.RFC3339),
	})
}

func (sc *StudyController) ownedStudySession(c *fiber.Ctx) (*models.StudySession, error) {
	user := middleware.CurrentUser(c)

	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return nil, utils.BadRequest(c, "Invalid session id")
	}

	var study models.StudySession
	if err := sc.DB.First(&study, sessionID).Error; err != nil || study.UserID != user.ID {
		return nil, utils.NotFound(c, "Study session not found")
	}
	return &study, nil
}

func (sc *StudyController) LogDistraction(c *fiber.Ctx) error {
	study, errResp := sc.ownedStudySession(c)
	if study == nil {
		return errResp
	}

	study.DistractionCount++
	if err := sc.DB.Save(study).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":           "Distraction logged",
		"distraction_count": study.DistractionCount,
	})
}

func (sc *StudyController) LogPomodoro(c *fiber.Ctx) error {
	study, errResp := sc.ownedStudySession(c)
	if study == nil {
		return errResp
	}

	study.PomodoroCount++
	if err := sc.DB.Save(study).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Pomodoro completed",
		"pomodoro_count": study.PomodoroCount,
	})
}

// CompleteStudy closes a study session and advances the daily streak. The
// session write and the streak row rewrite share one transaction.
func (sc *StudyController) CompleteStudy(c *fiber.Ctx) error {
	study, errResp := sc.ownedStudySession(c)
	if study == nil {
		return errResp
	}

	now := time.Now()
	study.EndTime = &now
	study.TotalDuration = int(now.Sub(study.StartTime).Seconds())

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(study).Error; err != nil {
			return err
		}
		_, err := services.RecordStudyDay(tx, study.UserID, now)
		return err
	})
	if err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":           "Study session completed",
		"total_duration":    study.TotalDuration,
		"pomodoro_count":    study.PomodoroCount,
		"distraction_count": study.DistractionCount,
	})
}

func (sc *StudyController) GetStudyHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var studies []models.StudySession
	if err := sc.DB.Where("user_id = ?", user.ID).
		Order("start_time DESC").
		Limit(20).
		Find(&studies).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	history := make([]fiber.Map, 0, len(studies))
	for _, s := range studies {
		history = append(history, fiber.Map{
			"id":                s.ID,
			"start_time":        s.StartTime.Format(time.RFC3339),
			"end_time":          formatTimePtr(s.EndTime),
			"total_duration":    s.TotalDuration,
			"pomodoro_count":    s.PomodoroCount,
			"distraction_count": s.DistractionCount,
		})
	}

	return c.JSON(fiber.Map{"sessions": history})
}

func taskPayload(task *models.StudyTask) fiber.Map {
	return fiber.Map{
		"id":             task.ID,
		"task_name":      task.TaskName,
		"estimated_time": task.EstimatedTime,
		"actual_time":    task.ActualTime,
		"completed":      task.Completed,
		"created_at":     task.CreatedAt.Format(time.RFC3339),
		"completed_at":   formatTimePtr(task.CompletedAt),
	}
}

func (sc *StudyController) CreateTask(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		TaskName      string `json:"task_name"`
		EstimatedTime *int   `json:"estimated_time"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.TaskName == "" || input.EstimatedTime == nil {
		return utils.BadRequest(c, "task_name and estimated_time are required")
	}
	if utf8.RuneCountInString(input.TaskName) > 200 {
		return utils.BadRequest(c, "Task name must be 200 characters or less")
	}

	task := models.StudyTask{
		UserID:        user.ID,
		TaskName:      input.TaskName,
		EstimatedTime: *input.EstimatedTime,
	}
	if err := sc.DB.Create(&task).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created successfully",
		"task":    taskPayload(&task),
	})
}

func (sc *StudyController) GetTasks(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var tasks []models.StudyTask
	if err := sc.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	pending := make([]fiber.Map, 0)
	completed := make([]fiber.Map, 0)
	for i := range tasks {
		payload := taskPayload(&tasks[i])
		if tasks[i].Completed {
			completed = append(completed, payload)
		} else {
			pending = append(pending, payload)
		}
	}

	return c.JSON(fiber.Map{
		"pending":   pending,
		"completed": completed,
	})
}

func (sc *StudyController) UpdateTask(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task id")
	}

	var input struct {
		Completed  *bool `json:"completed"`
		ActualTime *int  `json:"actual_time"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	var task models.StudyTask
	if err := sc.DB.First(&task, taskID).Error; err != nil || task.UserID != user.ID {
		return utils.NotFound(c, "Task not found")
	}

	if input.Completed != nil {
		task.Completed = *input.Completed
		if task.Completed && task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		} else if !task.Completed {
			task.CompletedAt = nil
		}
	}
	if input.ActualTime != nil {
		task.ActualTime = input.ActualTime
	}

	if err := sc.DB.Save(&task).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task updated successfully",
		"task":    taskPayload(&task),
	})
}

func (sc *StudyController) DeleteTask(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task id")
	}

	var task models.StudyTask
	if err := sc.DB.First(&task, taskID).Error; err != nil || task.UserID != user.ID {
		return utils.NotFound(c, "Task not found")
	}

	if err := sc.DB.Delete(&task).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

func (sc *StudyController) GetStreak(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var streak models.StudyStreak
	if err := sc.DB.Where("user_id = ?", user.ID).First(&streak).Error; err != nil {
		return c.JSON(fiber.Map{
			"current_streak":  0,
			"longest_streak":  0,
			"last_study_date": nil,
		})
	}

	var lastDate interface{}
	if streak.LastStudyDate != nil {
		lastDate = streak.LastStudyDate.Format(time.DateOnly)
	}

	return c.JSON(fiber.Map{
		"current_streak":  streak.CurrentStreak,
		"longest_streak":  streak.LongestStreak,
		"last_study_date": lastDate,
	})
}
