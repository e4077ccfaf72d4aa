package middleware

import (
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "sessid"

const currentUserKey = "currentUser"

// RequireSession resolves the session cookie to a user and stores it in the
// request locals. Requests without a usable session get 401.
func RequireSession(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := services.AuthenticateSession(db, c.Cookies(SessionCookie))
		if user == nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by RequireSession.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
