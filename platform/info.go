package platform

import (
	"context"
	"net/http"

	"coursedesk/models"
)

func (c *Client) PolicyInfo(ctx context.Context, auth Auth) (models.PolicyInfo, error) {
	body, err := c.getJSON(ctx, c.api, auth, "/api/policy-info", nil, "Failed to fetch policy")
	if err != nil {
		return models.PolicyInfo{}, err
	}
	return decodeObject[models.PolicyInfo](body, "policy"), nil
}

func (c *Client) UpdatePolicyInfo(ctx context.Context, auth Auth, id uint, policy models.PolicyInfo) error {
	_, err := c.sendJSON(ctx, c.api, auth, http.MethodPut, idPath("/api/policy-info", id), map[string]string{
		"about_us":        policy.AboutUs,
		"terms_condition": policy.TermsCondition,
		"privacy_policy":  policy.PrivacyPolicy,
	}, "Failed to update policy")
	return err
}

func (c *Client) BuyCourseInfo(ctx context.Context, auth Auth, id uint) (models.BuyCourseInfo, error) {
	body, err := c.getJSON(ctx, c.api, auth, idPath("/api/buy-course-info", id), nil, "Failed to fetch buy course info")
	if err != nil {
		return models.BuyCourseInfo{}, err
	}
	return decodeObject[models.BuyCourseInfo](body, "info"), nil
}

func (c *Client) UpdateBuyCourseInfo(ctx context.Context, auth Auth, id uint, info models.BuyCourseInfo) error {
	_, err := c.sendJSON(ctx, c.api, auth, http.MethodPut, idPath("/api/buy-course-info", id), map[string]string{
		"info":       info.Info,
		"video_link": info.VideoLink,
		"pdf_link":   info.PdfLink,
	}, "Failed to update buy course info")
	return err
}
