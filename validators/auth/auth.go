package authValidator

import (
	"coursedesk/middleware"
	"coursedesk/platform"
	"coursedesk/utils"
	commonValidator "coursedesk/validators/common"
	"log"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\+?\d{10,15}$`)
	return re.MatchString(mobile)
}

type LoginRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// Login validator middleware
func Login() fiber.Handler {
	return commonValidator.BodyValidator[LoginRequest]("validatedLogin")
}

type LoginHistoryRequest struct {
	Page  *int `query:"page"`
	Limit *int `query:"limit"`
}

func LoginHistoryList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginHistoryRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		} else if *reqData.Limit > 100 {
			errors["limit"] = "Limit must not exceed 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLoginHistory", reqData)
		return c.Next()
	}
}

// UpdateProfile validates the multipart profile form and stores it as a
// platform.Form under "validatedForm".
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		fullName := strings.TrimSpace(c.FormValue("full_name"))
		mobile := strings.TrimSpace(c.FormValue("mobile_number"))
		email := strings.TrimSpace(c.FormValue("email"))

		if fullName == "" {
			errors["full_name"] = "Full name is required!"
		}
		if mobile == "" || !isValidMobile(mobile) {
			errors["mobile_number"] = "Invalid mobile number!"
		}
		if email != "" && !isValidEmail(email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		fields := map[string]string{
			"full_name":     fullName,
			"mobile_number": mobile,
		}
		if email != "" {
			fields["email"] = email
		}

		files := make(map[string]*multipart.FileHeader)
		if header, err := c.FormFile("image"); err == nil {
			files["image"] = header
		}
		opened, closeAll, err := utils.OpenUploads(files)
		defer closeAll()
		if err != nil {
			log.Printf("[UPLOAD] failed to open profile image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
		}

		c.Locals("validatedForm", platform.Form{Fields: fields, Files: opened})
		return c.Next()
	}
}
