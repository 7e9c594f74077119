package infoRoutes

import (
	infoControllers "coursedesk/controllers/info"
	"coursedesk/middleware"
	infoValidator "coursedesk/validators/info"

	"github.com/gofiber/fiber/v2"
)

func SetupInfoRoutes(app *fiber.App) {
	policyGroup := app.Group("/admin/policy-info", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	policyGroup.Get("/", infoControllers.GetPolicy)
	policyGroup.Put("/", infoValidator.Policy(), infoControllers.UpdatePolicy)

	buyGroup := app.Group("/admin/buy-course-info", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	buyGroup.Get("/", infoControllers.GetBuyCourseInfo)
	buyGroup.Put("/", infoValidator.BuyCourseInfo(), infoControllers.UpdateBuyCourseInfo)
}
