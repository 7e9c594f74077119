package authControllers

import (
	"coursedesk/config"
	"coursedesk/database"
	"coursedesk/middleware"
	"coursedesk/models"
	"coursedesk/platform"
	authValidator "coursedesk/validators/auth"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Login relays the credentials to the platform and opens a console session
// holding the platform token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := platform.API.Login(c.UserContext(), reqData.MobileNumber, reqData.Password)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "An error occurred during sign in. Please try again.")
	}

	now := time.Now()
	expiresAt := now.Add(config.AppConfig.SessionTTL)
	if exp, ok := platform.TokenExpiry(result.Token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}

	rawUser := result.RawUser
	if len(rawUser) == 0 {
		rawUser = json.RawMessage("{}")
	}

	session := models.AdminSession{
		SessionID:     uuid.NewString(),
		UserID:        result.User.ID,
		PlatformToken: result.Token,
		User:          datatypes.JSON(rawUser),
		AdminType:     result.User.Type,
		ExpiresAt:     expiresAt,
	}
	if err := database.Database.Db.Create(&session).Error; err != nil {
		log.Printf("[SESSION] failed to store session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session", nil)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}
	userAgent := c.Get("User-Agent")

	loginTracking := models.LoginTracking{
		UserID:    session.UserID,
		SessionID: session.SessionID,
		IPAddress: ip,
		Device:    userAgent,
		Timestamp: now,
	}
	log.Printf("[SESSION] user %d signed in from IP: %s", session.UserID, ip)
	if err := database.Database.Db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token, err := middleware.GenerateSessionToken(session.SessionID, session.UserID, session.AdminType, expiresAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":       session.User,
		"adminType":  session.AdminType,
		"token":      token,
		"expires_at": expiresAt,
	})
}

func Logout(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*models.AdminSession)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Model(session).Update("revoked_at", time.Now()).Error; err != nil {
		log.Printf("[SESSION] failed to revoke session %s: %v", session.SessionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log out", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

func LoginHistoryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLoginHistory").(*authValidator.LoginHistoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var loginTraking []models.LoginTracking
	var total int64

	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("timestamp DESC").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&loginTraking).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load login history!", nil)
	}

	if err := database.Database.Db.Model(&models.LoginTracking{}).
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Count(&total).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load login history!", nil)
	}

	response := map[string]interface{}{
		"loginTraking": loginTraking,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", response)
}

func GetProfile(c *fiber.Ctx) error {
	user, _, err := platform.API.Profile(c.UserContext(), middleware.AuthFromCtx(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to load profile")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched.", user)
}

// UpdateProfile forwards the form and refreshes the user cached on the
// session with the platform's copy.
func UpdateProfile(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedForm").(platform.Form)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, raw, err := platform.API.UpdateProfile(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Update failed")
	}

	if session, ok := c.Locals("session").(*models.AdminSession); ok && len(raw) > 0 {
		if err := database.Database.Db.Model(session).Update("user", datatypes.JSON(raw)).Error; err != nil {
			log.Printf("[SESSION] failed to refresh cached user on %s: %v", session.SessionID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", user)
}
