package platform

import (
	"context"
	"net/http"

	"coursedesk/models"
)

func (c *Client) ListUsers(ctx context.Context, auth Auth) ([]models.PlatformUser, error) {
	body, err := c.getJSON(ctx, c.api, auth, "/api/auth/users", nil, "Failed to fetch users")
	if err != nil {
		return nil, err
	}
	return decodeList[models.PlatformUser](body, "users"), nil
}

// NotifyUser sends a push notification to one user.
func (c *Client) NotifyUser(ctx context.Context, auth Auth, userID uint, description string) error {
	_, err := c.sendJSON(ctx, c.api, auth, http.MethodPost, "/api/notifications", map[string]interface{}{
		"user_id":     userID,
		"title":       "Admin Notification",
		"description": description,
	}, "Failed to send notification")
	return err
}

// Broadcast goes through the rate host, which owns the broadcast channel.
func (c *Client) Broadcast(ctx context.Context, auth Auth, message string) error {
	_, err := c.sendJSON(ctx, c.rates, auth, http.MethodPost, "/api/notifications/broadcast", map[string]string{
		"message": message,
	}, "Failed to send broadcast")
	return err
}
