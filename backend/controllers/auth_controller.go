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

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

func (ac *AuthController) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	cookie := fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if ac.Cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteNoneMode
		cookie.Domain = ac.Cfg.CookieDomain
	}
	c.Cookie(&cookie)
}

func (ac *AuthController) clearSessionCookie(c *fiber.Ctx) {
	ac.setSessionCookie(c, "", time.Unix(0, 0))
}

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Username     string `json:"username"`
		Email        string `json:"email"`
		FullName     string `json:"full_name"`
		PasswordHash string `json:"password_hash"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.Username == "" || input.Email == "" || input.FullName == "" || input.PasswordHash == "" {
		return utils.BadRequest(c, "All fields are required")
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "Email already registered")
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: input.PasswordHash,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	session, err := services.CreateSession(ac.DB, user.ID)
	if err != nil {
		return utils.InternalServerError(c, err)
	}
	ac.setSessionCookie(c, session.Token, session.ExpiresAt)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    userPayload(&user),
	})
}

// Login godoc
// @Summary Log in
// @Description Matches email and password hash, opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid or missing JSON")
	}

	if input.Email == "" || input.PasswordHash == "" {
		return utils.BadRequest(c, "email and password_hash are required")
	}

	var user models.User
	err := ac.DB.Where("email = ? AND password_hash = ?", input.Email, input.PasswordHash).
		First(&user).Error
	if err != nil {
		return utils.Unauthorized(c, "Invalid email or password")
	}

	session, err := services.CreateSession(ac.DB, user.ID)
	if err != nil {
		return utils.InternalServerError(c, err)
	}
	ac.setSessionCookie(c, session.Token, session.ExpiresAt)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    userPayload(&user),
	})
}

// Logout invalidates the presented session. Logging out twice, or with no
// session at all, still succeeds.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	services.InvalidateSession(ac.DB, c.Cookies(middleware.SessionCookie))
	ac.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func (ac *AuthController) GetAccount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{"user": userPayload(user)})
}

func (ac *AuthController) UpdateAccount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Username     *string `json:"username"`
		Email        *string `json:"email"`
		FullName     *string `json:"full_name"`
		PasswordHash *string `json:"password_hash"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid JSON")
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.PasswordHash != nil {
		user.PasswordHash = *input.PasswordHash
	}

	if err := ac.DB.Save(user).Error; err != nil {
		return utils.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Account updated successfully",
		"user":    userPayload(user),
	})
}

// DeleteAccount removes the user together with every owned record and every
// session, all in one transaction. Rows are deleted outright, not
// soft-deleted: the email must be free for a later re-registration.
func (ac *AuthController) DeleteAccount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		// Session() gives a fresh statement per chained call; without it the
		// unscoped instance is reused and conditions accumulate across deletes.
		tx = tx.Unscoped().Session(&gorm.Session{})

		ownedByUser := []interface{}{
			&models.Session{},
			&models.OnboardingData{},
			&models.WaterIntake{},
			&models.StretchReminder{},
			&models.StudyTask{},
			&models.StudyStreak{},
			&models.FocusSession{},
			&models.GratitudeEntry{},
			&models.MoodCheckin{},
			&models.StressJournal{},
		}
		for _, model := range ownedByUser {
			if err := tx.Where("user_id = ?", user.ID).Delete(model).Error; err != nil {
				return err
			}
		}

		// Exercises hang off workout sessions, not the user directly.
		var workoutIDs []uint
		if err := tx.Model(&models.WorkoutSession{}).
			Where("user_id = ?", user.ID).
			Pluck("id", &workoutIDs).Error; err != nil {
			return err
		}
		if len(workoutIDs) > 0 {
			if err := tx.Where("session_id IN ?", workoutIDs).Delete(&models.Exercise{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.WorkoutSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.StudySession{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return utils.InternalServerError(c, err)
	}

	ac.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}
