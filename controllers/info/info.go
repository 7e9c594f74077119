package infoControllers

import (
	"coursedesk/config"
	"coursedesk/middleware"
	"coursedesk/models"
	"coursedesk/platform"
	infoValidator "coursedesk/validators/info"

	"github.com/gofiber/fiber/v2"
)

func GetPolicy(c *fiber.Ctx) error {
	policy, err := platform.API.PolicyInfo(c.UserContext(), middleware.AuthFromCtx(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch policy")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Policy info.", policy)
}

// UpdatePolicy writes to the policy row the platform currently serves.
func UpdatePolicy(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPolicy").(*infoValidator.PolicyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)

	current, err := platform.API.PolicyInfo(ctx, auth)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch policy")
	}
	if current.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Policy not found!", nil)
	}

	update := models.PolicyInfo{
		ID:             current.ID,
		AboutUs:        reqData.AboutUs,
		TermsCondition: reqData.TermsCondition,
		PrivacyPolicy:  reqData.PrivacyPolicy,
	}
	if err := platform.API.UpdatePolicyInfo(ctx, auth, current.ID, update); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update policy")
	}

	policy, err := platform.API.PolicyInfo(ctx, auth)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch policy")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Policy updated successfully!", policy)
}

func GetBuyCourseInfo(c *fiber.Ctx) error {
	info, err := platform.API.BuyCourseInfo(c.UserContext(), middleware.AuthFromCtx(c), uint(config.AppConfig.BuyCourseInfoID))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch buy course info")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Buy course info.", info)
}

func UpdateBuyCourseInfo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBuyCourseInfo").(*infoValidator.BuyCourseInfoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)
	id := uint(config.AppConfig.BuyCourseInfoID)

	update := models.BuyCourseInfo{
		ID:        id,
		Info:      reqData.Info,
		VideoLink: reqData.VideoLink,
		PdfLink:   reqData.PdfLink,
	}
	if err := platform.API.UpdateBuyCourseInfo(ctx, auth, id, update); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update buy course info")
	}

	info, err := platform.API.BuyCourseInfo(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch buy course info")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Buy course info updated successfully!", info)
}
