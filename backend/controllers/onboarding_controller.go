package controllers

import (
	"encoding/json"
	"strings"
	"time"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OnboardingController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewOnboardingController(db *gorm.DB, cfg *config.Config) *OnboardingController {
	return &OnboardingController{DB: db, Cfg: cfg}
}

// recommendationFor maps a quiz category to its canned advice line.
var recommendationFor = map[string]string{
	"physical": "Start with 3 workout sessions per week and track your water intake daily.",
	"study":    "Use the Pomodoro technique: 25 minutes of focused work, 5 minute breaks.",
	"focus":    "Practice breathing exercises for 5 minutes each morning.",
	"stress":   "Check in with your mood daily and journal when feeling overwhelmed.",
}

var categoryOrder = []string{"physical", "study", "focus", "stress"}

func buildRecommendations(categories []string) string {
	selected := make(map[string]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}

	var lines []string
	for _, category := range categoryOrder {
		if selected[category] {
			lines = append(lines, recommendationFor[category])
		}
	}
	return strings.Join(lines, " ")
}

// SubmitOnboarding stores the quiz answers and the generated recommendation
// text. Resubmitting the quiz replaces the earlier answers.
func (oc *OnboardingController) SubmitOnboarding(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Categories    []string        `json:"categories"`
		PhysicalGoals json.RawMessage `json:"physical_goals"`
		StudyGoals    json.RawMessage `json:"study_goals"`
		FocusGoals    json.RawMessage `json:"focus_goals"`
		StressGoals   json.RawMessage `json:"stress_goals"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	recommendations := buildRecommendations(input.Categories)

	categoriesJSON, err := json.Marshal(input.Categories)
	if err != nil {
		return utils.BadRequest(c, "Invalid categories")
	}

	var onboarding models.OnboardingData
	err = oc.DB.Where("user_id = ?", user.ID).First(&onboarding).Error
	if err != nil {
		onboarding = models.OnboardingData{UserID: user.ID}
	}

	onboarding.Categories = categoriesJSON
	onboarding.PhysicalGoals = datatypes.JSON(input.PhysicalGoals)
	onboarding.StudyGoals = datatypes.JSON(input.StudyGoals)
	onboarding.FocusGoals = datatypes.JSON(input.FocusGoals)
	onboarding.StressGoals = datatypes.JSON(input.StressGoals)
	onboarding.Recommendations = recommendations
	onboarding.CompletedAt = time.Now()

	if err := oc.DB.Save(&onboarding).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Onboarding completed successfully",
		"recommendations": recommendations,
	})
}

func (oc *OnboardingController) GetOnboarding(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var onboarding models.OnboardingData
	if err := oc.DB.Where("user_id = ?", user.ID).First(&onboarding).Error; err != nil {
		return utils.NotFound(c, "No onboarding data found")
	}

	return c.JSON(fiber.Map{
		"categories":      onboarding.Categories,
		"physical_goals":  onboarding.PhysicalGoals,
		"study_goals":     onboarding.StudyGoals,
		"focus_goals":     onboarding.FocusGoals,
		"stress_goals":    onboarding.StressGoals,
		"recommendations": onboarding.Recommendations,
		"completed_at":    onboarding.CompletedAt.Format(time.RFC3339),
	})
}
