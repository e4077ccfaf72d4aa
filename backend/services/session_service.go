package services

import (
	"errors"
	"time"

	"project/backend/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionLifetime is how long a browser session stays usable after login.
const SessionLifetime = 90 * 24 * time.Hour

// CreateSession issues a fresh session for the user and persists it.
func CreateSession(db *gorm.DB, userID uint) (*models.Session, error) {
	now := time.Now()
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionLifetime),
		IsValid:   true,
	}

	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// AuthenticateSession maps a session token to its user. A nil user means no
// identity: missing token, unknown token, invalidated or expired session.
// Storage failures also yield no identity (fail closed); they are logged but
// never surfaced to the caller.
func AuthenticateSession(db *gorm.DB, token string) *models.User {
	if token == "" {
		return nil
	}

	var session models.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("session lookup failed")
		}
		return nil
	}

	if !session.IsValid || !time.Now().Before(session.ExpiresAt) {
		// Expired sessions are left in place and rejected on lookup.
		return nil
	}

	var user models.User
	if err := db.First(&user, session.UserID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("session user lookup failed")
		}
		return nil
	}
	return &user
}

// InvalidateSession flips the validity flag of the given session. The row is
// kept for auditability; an unknown or already-invalid token is a no-op.
func InvalidateSession(db *gorm.DB, token string) {
	if token == "" {
		return
	}
	if err := db.Model(&models.Session{}).Where("token = ?", token).Update("is_valid", false).Error; err != nil {
		log.Error().Err(err).Msg("session invalidation failed")
	}
}
