package platform

import (
	"context"
	"encoding/json"
	"net/http"

	"coursedesk/models"
)

const signInFailed = "Sign in failed. Please check your credentials."

// LoginResult is what the platform hands back on a successful admin sign-in.
// RawUser keeps the user object as sent so it can be cached verbatim.
type LoginResult struct {
	Token   string
	User    models.PlatformUser
	RawUser json.RawMessage
}

func (c *Client) Login(ctx context.Context, mobileNumber, password string) (*LoginResult, error) {
	req := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"mobile_number": mobileNumber,
			"password":      password,
		})
	body, err := send(req, http.MethodPost, "/api/admin/auth/login", signInFailed)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Token == "" {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: signInFailed}
	}

	result := &LoginResult{Token: payload.Token, RawUser: payload.User}
	if len(payload.User) > 0 {
		if err := json.Unmarshal(payload.User, &result.User); err != nil {
			return nil, &APIError{Status: http.StatusBadGateway, Message: signInFailed}
		}
	}
	return result, nil
}

func (c *Client) Profile(ctx context.Context, auth Auth) (models.PlatformUser, json.RawMessage, error) {
	body, err := c.getJSON(ctx, c.api, auth, "/api/auth/profile", nil, "Failed to load profile")
	if err != nil {
		return models.PlatformUser{}, nil, err
	}
	raw := ExtractObject(body, "user")
	return decodeObject[models.PlatformUser](body, "user"), raw, nil
}

// UpdateProfile sends full_name, mobile_number, optional email and image.
// The returned raw user is the platform's updated copy.
func (c *Client) UpdateProfile(ctx context.Context, auth Auth, form Form) (models.PlatformUser, json.RawMessage, error) {
	body, err := c.sendMultipart(ctx, c.api, auth, http.MethodPut, "/api/auth/profile", form.Fields, form.Files, "Update failed")
	if err != nil {
		return models.PlatformUser{}, nil, err
	}
	raw := ExtractObject(body, "user")
	return decodeObject[models.PlatformUser](body, "user"), raw, nil
}
