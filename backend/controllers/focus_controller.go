package controllers

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FocusController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewFocusController(db *gorm.DB, cfg *config.Config) *FocusController {
	return &FocusController{DB: db, Cfg: cfg}
}

var validFocusTypes = map[string]bool{
	"breathing":  true,
	"meditation": true,
	"ambient":    true,
}

func (fc *FocusController) CreateFocusSession(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		SessionType      string          `json:"session_type"`
		Duration         *int            `json:"duration"`
		BreathingPattern json.RawMessage `json:"breathing_pattern"`
		AmbientSound     string          `json:"ambient_sound"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.SessionType == "" || input.Duration == nil {
		return utils.BadRequest(c, "session_type and duration are required")
	}
	if !validFocusTypes[input.SessionType] {
		return utils.BadRequest(c, "session_type must be one of breathing, meditation, ambient")
	}

	focus := models.FocusSession{
		UserID:           user.ID,
		SessionType:      input.SessionType,
		Duration:         *input.Duration,
		BreathingPattern: datatypes.JSON(input.BreathingPattern),
		AmbientSound:     input.AmbientSound,
		CompletedAt:      time.Now(),
	}
	if err := fc.DB.Create(&focus).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Focus session created successfully",
		"session": fiber.Map{
			"id":           focus.ID,
			"session_type": focus.SessionType,
			"duration":     focus.Duration,
			"completed_at": focus.CompletedAt.Format(time.RFC3339),
		},
	})
}

func (fc *FocusController) GetFocusHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var sessions []models.FocusSession
	if err := fc.DB.Where("user_id = ?", user.ID).
		Order("completed_at DESC").
		Limit(20).
		Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	history := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		history = append(history, fiber.Map{
			"id":                s.ID,
			"session_type":      s.SessionType,
			"duration":          s.Duration,
			"breathing_pattern": s.BreathingPattern,
			"ambient_sound":     s.AmbientSound,
			"completed_at":      s.CompletedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{"sessions": history})
}

func (fc *FocusController) CreateGratitudeEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		EntryText string `json:"entry_text"`
		Date      string `json:"date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.EntryText == "" || input.Date == "" {
		return utils.BadRequest(c, "entry_text and date are required")
	}
	if utf8.RuneCountInString(input.EntryText) > 5000 {
		return utils.BadRequest(c, "Entry text must be 5000 characters or less")
	}

	entryDate, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	}

	entry := models.GratitudeEntry{
		UserID:    user.ID,
		EntryText: input.EntryText,
		Date:      entryDate,
	}
	if err := fc.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Gratitude entry created successfully",
		"entry": fiber.Map{
			"id":         entry.ID,
			"entry_text": entry.EntryText,
			"date":       entry.Date.Format(time.DateOnly),
			"created_at": entry.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (fc *FocusController) GetRecentGratitude(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	weekAgo := utils.DateOnly(time.Now()).AddDate(0, 0, -6)

	var entries []models.GratitudeEntry
	if err := fc.DB.Where("user_id = ? AND date >= ?", user.ID, weekAgo).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	recent := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		recent = append(recent, fiber.Map{
			"id":         e.ID,
			"entry_text": e.EntryText,
			"date":       e.Date.Format(time.DateOnly),
			"created_at": e.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{"entries": recent})
}
