package middleware

import (
	"coursedesk/config"

	"github.com/gofiber/fiber/v2"
)

// CheckAdminTypeMiddleware only lets sessions whose platform admin type is
// listed in CONSOLE_ADMIN_TYPES through. An empty list allows everyone.
// Must run after SessionMiddleware.
func CheckAdminTypeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed := config.AppConfig.ConsoleAdminTypes
		if len(allowed) == 0 {
			return c.Next()
		}

		auth := AuthFromCtx(c)
		if !auth.Valid() {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		for _, adminType := range allowed {
			if adminType == auth.AdminType {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
