package currencyValidator

import (
	"coursedesk/middleware"
	commonValidator "coursedesk/validators/common"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CurrencyRateRequest struct {
	FromCurrency string  `json:"from_currency" validate:"required,len=3,alpha"`
	Rate         float64 `json:"rate" validate:"required,gt=0"`
	Country      string  `json:"country" validate:"required,max=100"`
}

type RateUpdateRequest struct {
	ID           uint    `json:"id" validate:"required,gt=0"`
	FromCurrency string  `json:"from_currency" validate:"required,len=3,alpha"`
	Rate         float64 `json:"rate" validate:"required,gt=0"`
}

type BulkUpdateRequest struct {
	Updates []RateUpdateRequest `json:"updates" validate:"required,min=1,dive"`
}

func CurrencyRate() fiber.Handler {
	return commonValidator.BodyValidator[CurrencyRateRequest]("validatedCurrencyRate")
}

func BulkUpdate() fiber.Handler {
	return commonValidator.BodyValidator[BulkUpdateRequest]("validatedBulkUpdate")
}

// Periods accepted by the history filter
var periods = map[string]bool{"": true, "all": true, "today": true, "week": true, "month": true}

func History() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := strings.ToLower(strings.TrimSpace(c.Query("period")))
		if !periods[period] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"period": "period must be one of: today week month all!",
			})
		}
		if period == "" {
			period = "all"
		}
		c.Locals("period", period)
		return c.Next()
	}
}
