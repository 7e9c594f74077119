package middleware

import (
	"errors"
	"log"

	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// PlatformErrorStatus maps a platform client error to the console status and
// message. Upstream 4xx keep their status and message; upstream 5xx and
// transport failures become 502.
func PlatformErrorStatus(err error, fallback string) (int, string) {
	if errors.Is(err, platform.ErrMissingToken) {
		return fiber.StatusUnauthorized, "Unauthorized: Please log in again"
	}

	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status >= fiber.StatusInternalServerError || status < fiber.StatusBadRequest {
			status = fiber.StatusBadGateway
		}
		return status, apiErr.Message
	}

	if fallback == "" {
		fallback = "Unable to reach the course platform!"
	}
	return fiber.StatusBadGateway, fallback
}

// PlatformErrorResponse writes a platform client error in the console envelope
func PlatformErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	status, message := PlatformErrorStatus(err, fallback)
	if status == fiber.StatusBadGateway {
		log.Printf("[PLATFORM] %s %s: %v", c.Method(), c.Path(), err)
	}
	return JsonResponse(c, status, false, message, nil)
}

// AuthFromCtx returns the operator context stored by SessionMiddleware. The
// zero Auth makes every platform call fail with ErrMissingToken.
func AuthFromCtx(c *fiber.Ctx) platform.Auth {
	auth, _ := c.Locals("auth").(platform.Auth)
	return auth
}
