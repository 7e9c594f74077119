package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk/config"
	"coursedesk/database"
	"coursedesk/models"
)

func setupSessionDB(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", ConsoleAdminTypes: []string{"super_admin"}}

	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}
}

func createSession(t *testing.T, platformToken, adminType string, expiresAt time.Time) (models.AdminSession, string) {
	t.Helper()
	session := models.AdminSession{
		SessionID:     uuid.NewString(),
		UserID:        42,
		PlatformToken: platformToken,
		AdminType:     adminType,
		ExpiresAt:     expiresAt,
	}
	require.NoError(t, database.Database.Db.Create(&session).Error)

	token, err := GenerateSessionToken(session.SessionID, session.UserID, adminType, expiresAt)
	require.NoError(t, err)
	return session, token
}

func platformToken(t *testing.T, exp time.Time) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("platform-owned-key"))
	require.NoError(t, err)
	return signed
}

func sessionApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", SessionMiddleware, CheckAdminTypeMiddleware(), func(c *fiber.Ctx) error {
		auth := AuthFromCtx(c)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"token": auth.Token, "userId": auth.UserID})
	})
	return app
}

func call(t *testing.T, app *fiber.App, bearer string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", "/whoami", nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSessionMiddleware_ExposesPlatformAuth(t *testing.T) {
	setupSessionDB(t)
	upstream := platformToken(t, time.Now().Add(time.Hour))
	_, token := createSession(t, upstream, "super_admin", time.Now().Add(time.Hour))

	status, body := call(t, sessionApp(), "Bearer "+token)

	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, upstream, data["token"])
	assert.Equal(t, float64(42), data["userId"])
}

func TestSessionMiddleware_Rejections(t *testing.T) {
	setupSessionDB(t)
	app := sessionApp()

	status, body := call(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Missing or invalid Authorization header", body["message"])

	status, body = call(t, app, "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid Authorization header format", body["message"])

	status, body = call(t, app, "Bearer not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["message"])

	orphan, err := GenerateSessionToken(uuid.NewString(), 1, "super_admin", time.Now().Add(time.Hour))
	require.NoError(t, err)
	status, body = call(t, app, "Bearer "+orphan)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Session not found. Please log in again.", body["message"])
}

func TestSessionMiddleware_RevokedSession(t *testing.T) {
	setupSessionDB(t)
	session, token := createSession(t, "opaque", "super_admin", time.Now().Add(time.Hour))
	require.NoError(t, database.Database.Db.Model(&session).Update("revoked_at", time.Now()).Error)

	status, body := call(t, sessionApp(), "Bearer "+token)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Session expired. Please log in again.", body["message"])
}

func TestSessionMiddleware_ExpiredPlatformTokenRevokes(t *testing.T) {
	setupSessionDB(t)
	session, token := createSession(t, platformToken(t, time.Now().Add(-time.Minute)), "super_admin", time.Now().Add(time.Hour))

	status, body := call(t, sessionApp(), "Bearer "+token)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Session expired. Please log in again.", body["message"])

	var stored models.AdminSession
	require.NoError(t, database.Database.Db.First(&stored, session.ID).Error)
	assert.NotNil(t, stored.RevokedAt)
}

func TestCheckAdminTypeMiddleware(t *testing.T) {
	setupSessionDB(t)
	_, token := createSession(t, "opaque", "instructor", time.Now().Add(time.Hour))

	status, body := call(t, sessionApp(), "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "You do not have permission to access this resource!", body["message"])

	config.AppConfig.ConsoleAdminTypes = nil
	status, _ = call(t, sessionApp(), "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
}
