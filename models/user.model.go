package models

import "strconv"

// PlatformUser is a learner or admin account on the course platform
type PlatformUser struct {
	ID           uint   `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Image        string `json:"image"`
	Status       string `json:"status,omitempty"` // active, hold, blocked
	Type         string `json:"type,omitempty"`
}

// UserRow is a user as listed in the console
type UserRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Avatar       string `json:"avatar"`
	Status       string `json:"status"`
}

const DefaultAvatar = "/default-avatar.png"

// Row converts the user to its list representation with display fallbacks.
func (u PlatformUser) Row() UserRow {
	return UserRow{
		ID:           strconv.FormatUint(uint64(u.ID), 10),
		Name:         orDefault(u.FullName, "N/A"),
		Email:        orDefault(u.Email, "N/A"),
		MobileNumber: orDefault(u.MobileNumber, "N/A"),
		Avatar:       orDefault(u.Image, DefaultAvatar),
		Status:       orDefault(u.Status, "active"),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
