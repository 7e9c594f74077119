package userRoutes

import (
	usersControllers "coursedesk/controllers/users"
	"coursedesk/middleware"
	usersValidator "coursedesk/validators/users"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/admin/users", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())

	userGroup.Get("/", usersControllers.ListUsers)
	userGroup.Get("/export", usersControllers.ExportUsers)
	userGroup.Get("/:id/enrollments", usersValidator.UserID(), usersControllers.GetEnrollments)
	userGroup.Post("/:id/enrollments/:course_id/toggle", usersValidator.ToggleEnrollment(), usersControllers.ToggleEnrollment)
	userGroup.Post("/:id/notify", usersValidator.UserID(), usersValidator.NotifyUser(), usersControllers.NotifyUser)

	notificationGroup := app.Group("/admin/notifications", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	notificationGroup.Post("/broadcast", usersValidator.Broadcast(), usersControllers.Broadcast)
}
