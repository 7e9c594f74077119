package currencyRoutes

import (
	currencyControllers "coursedesk/controllers/currency"
	"coursedesk/middleware"
	commonValidator "coursedesk/validators/common"
	currencyValidator "coursedesk/validators/currency"

	"github.com/gofiber/fiber/v2"
)

func SetupCurrencyRoutes(app *fiber.App) {
	byID := commonValidator.IDParams("id")

	rateGroup := app.Group("/admin/currency-rates", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	rateGroup.Get("/", currencyControllers.ListRates)
	rateGroup.Get("/today", currencyControllers.TodayRates)
	rateGroup.Get("/options", currencyControllers.Options)
	rateGroup.Post("/refresh", currencyControllers.RefreshRates)
	rateGroup.Put("/bulk", currencyValidator.BulkUpdate(), currencyControllers.BulkUpdateRates)
	rateGroup.Get("/:id", byID, currencyControllers.GetRate)
	rateGroup.Post("/", currencyValidator.CurrencyRate(), currencyControllers.CreateRate)
	rateGroup.Put("/:id", byID, currencyValidator.CurrencyRate(), currencyControllers.UpdateRate)
	rateGroup.Delete("/:id", byID, currencyControllers.DeleteRate)

	historyGroup := app.Group("/admin/currency-history", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	historyGroup.Get("/", currencyValidator.History(), currencyControllers.History)
	historyGroup.Get("/export", currencyValidator.History(), currencyControllers.ExportHistory)
}
