package authRoutes

import (
	authControllers "coursedesk/controllers/auth"
	"coursedesk/middleware"
	authValidators "coursedesk/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.SessionMiddleware, authControllers.Logout)
	authGroup.Get("/login/history", authValidators.LoginHistoryList(), middleware.SessionMiddleware, authControllers.LoginHistoryList)
	authGroup.Get("/profile", middleware.SessionMiddleware, authControllers.GetProfile)
	authGroup.Put("/profile", middleware.SessionMiddleware, authValidators.UpdateProfile(), authControllers.UpdateProfile)
}
