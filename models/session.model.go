package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminSession keeps an operator's platform token server-side
type AdminSession struct {
	gorm.Model
	SessionID     string         `json:"session_id" gorm:"uniqueIndex;size:36;not null"`
	UserID        uint           `json:"user_id" gorm:"index"`
	PlatformToken string         `json:"-" gorm:"not null"`
	User          datatypes.JSON `json:"user"`
	AdminType     string         `json:"admin_type"`
	ExpiresAt     time.Time      `json:"expires_at"`
	RevokedAt     *time.Time     `json:"revoked_at"`
}

// Active reports whether the session can still be used at t.
func (s AdminSession) Active(t time.Time) bool {
	return s.RevokedAt == nil && t.Before(s.ExpiresAt)
}
