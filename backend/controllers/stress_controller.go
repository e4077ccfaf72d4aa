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

type StressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStressController(db *gorm.DB, cfg *config.Config) *StressController {
	return &StressController{DB: db, Cfg: cfg}
}

func (sc *StressController) CreateMoodCheckin(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		MoodScore *int   `json:"mood_score"`
		Notes     string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.MoodScore == nil {
		return utils.BadRequest(c, "mood_score is required")
	}
	if *input.MoodScore < 1 || *input.MoodScore > 5 {
		return utils.BadRequest(c, "mood_score must be between 1 and 5")
	}
	if utf8.RuneCountInString(input.Notes) > 5000 {
		return utils.BadRequest(c, "Notes must be 5000 characters or less")
	}

	mood := models.MoodCheckin{
		UserID:    user.ID,
		MoodScore: *input.MoodScore,
		Notes:     input.Notes,
	}
	if err := sc.DB.Create(&mood).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Mood check-in created successfully",
		"mood": fiber.Map{
			"id":         mood.ID,
			"mood_score": mood.MoodScore,
			"notes":      mood.Notes,
			"created_at": mood.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (sc *StressController) GetRecentMoods(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	twoWeeksAgo := time.Now().AddDate(0, 0, -13)

	var moods []models.MoodCheckin
	if err := sc.DB.Where("user_id = ? AND created_at >= ?", user.ID, twoWeeksAgo).
		Order("created_at DESC").
		Find(&moods).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	recent := make([]fiber.Map, 0, len(moods))
	for _, m := range moods {
		recent = append(recent, fiber.Map{
			"id":         m.ID,
			"mood_score": m.MoodScore,
			"notes":      m.Notes,
			"created_at": m.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{"moods": recent})
}

func (sc *StressController) GetMoodAverage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	weekAgo := time.Now().AddDate(0, 0, -6)

	var moods []models.MoodCheckin
	if err := sc.DB.Where("user_id = ? AND created_at >= ?", user.ID, weekAgo).
		Find(&moods).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	scores := make([]float64, 0, len(moods))
	for _, m := range moods {
		scores = append(scores, float64(m.MoodScore))
	}

	return c.JSON(fiber.Map{
		"average": services.Average(scores),
		"period":  "7days",
	})
}

func (sc *StressController) CreateJournalEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		EntryText string `json:"entry_text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.EntryText == "" {
		return utils.BadRequest(c, "entry_text is required")
	}
	if utf8.RuneCountInString(input.EntryText) > 5000 {
		return utils.BadRequest(c, "Entry text must be 5000 characters or less")
	}

	entry := models.StressJournal{
		UserID:    user.ID,
		EntryText: input.EntryText,
	}
	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Journal entry created successfully",
		"entry": fiber.Map{
			"id":         entry.ID,
			"entry_text": entry.EntryText,
			"created_at": entry.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (sc *StressController) GetRecentJournalEntries(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var entries []models.StressJournal
	if err := sc.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(10).
		Find(&entries).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	recent := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		recent = append(recent, fiber.Map{
			"id":         e.ID,
			"entry_text": e.EntryText,
			"created_at": e.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{"entries": recent})
}

func (sc *StressController) GetJournalEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	entryID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid entry id")
	}

	var entry models.StressJournal
	if err := sc.DB.First(&entry, entryID).Error; err != nil || entry.UserID != user.ID {
		return utils.NotFound(c, "Journal entry not found")
	}

	return c.JSON(fiber.Map{
		"entry": fiber.Map{
			"id":         entry.ID,
			"entry_text": entry.EntryText,
			"created_at": entry.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (sc *StressController) DeleteJournalEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	entryID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid entry id")
	}

	var entry models.StressJournal
	if err := sc.DB.First(&entry, entryID).Error; err != nil || entry.UserID != user.ID {
		return utils.NotFound(c, "Journal entry not found")
	}

	if err := sc.DB.Delete(&entry).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Journal entry deleted successfully"})
}
