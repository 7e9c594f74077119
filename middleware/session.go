package middleware

import (
	"coursedesk/config"
	"coursedesk/database"
	"coursedesk/models"
	"coursedesk/platform"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionToken signs the console token handed out at login
func GenerateSessionToken(sessionID string, userID uint, adminType string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid":       sessionID,
		"userId":    userID,
		"adminType": adminType,
		"iat":       time.Now().Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// SessionMiddleware checks the console token, loads the live session behind
// it and exposes the platform auth context as c.Locals("auth").
func SessionMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	sid, _ := claims["sid"].(string)
	if !ok || sid == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	var session models.AdminSession
	if err := database.Database.Db.Where("session_id = ?", sid).First(&session).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session not found. Please log in again.", nil)
	}

	now := time.Now()
	if !session.Active(now) {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again.", nil)
	}
	if exp, ok := platform.TokenExpiry(session.PlatformToken); ok && !now.Before(exp) {
		log.Printf("[SESSION] platform token for session %s expired at %s", session.SessionID, exp.Format(time.RFC3339))
		database.Database.Db.Model(&session).Update("revoked_at", now)
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again.", nil)
	}

	c.Locals("userId", session.UserID)
	c.Locals("session", &session)
	c.Locals("auth", platform.Auth{
		Token:     session.PlatformToken,
		UserID:    session.UserID,
		AdminType: session.AdminType,
	})

	return c.Next()
}
