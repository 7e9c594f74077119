package infoValidator

import (
	commonValidator "coursedesk/validators/common"

	"github.com/gofiber/fiber/v2"
)

type PolicyRequest struct {
	AboutUs        string `json:"about_us"`
	TermsCondition string `json:"terms_condition"`
	PrivacyPolicy  string `json:"privacy_policy"`
}

type BuyCourseInfoRequest struct {
	Info      string `json:"info" validate:"required"`
	VideoLink string `json:"video_link" validate:"omitempty,url"`
	PdfLink   string `json:"pdf_link" validate:"omitempty,url"`
}

func Policy() fiber.Handler {
	return commonValidator.BodyValidator[PolicyRequest]("validatedPolicy")
}

func BuyCourseInfo() fiber.Handler {
	return commonValidator.BodyValidator[BuyCourseInfoRequest]("validatedBuyCourseInfo")
}
