package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking records each console sign-in
type LoginTracking struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index"`
	SessionID string    `json:"session_id" gorm:"size:36"`
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
	IsDeleted bool      `gorm:"default:false"`
}
