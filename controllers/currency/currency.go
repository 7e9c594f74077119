package currencyControllers

import (
	"coursedesk/middleware"
	"coursedesk/models"
	"coursedesk/platform"
	"coursedesk/utils"
	currencyValidator "coursedesk/validators/currency"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

func ListRates(c *fiber.Ctx) error {
	rates, err := platform.API.CurrencyRates(c.UserContext(), middleware.AuthFromCtx(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch currency rates")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Currency rate list.", rates)
}

func GetRate(c *fiber.Ctx) error {
	id, _ := c.Locals("id").(uint)
	rate, err := platform.API.CurrencyRate(c.UserContext(), middleware.AuthFromCtx(c), id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch currency rate")
	}
	if rate.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Currency rate not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Currency rate details.", rate)
}

func rateInput(reqData *currencyValidator.CurrencyRateRequest) platform.CurrencyRateInput {
	return platform.CurrencyRateInput{
		FromCurrency: reqData.FromCurrency,
		Rate:         reqData.Rate,
		Country:      strings.TrimSpace(reqData.Country),
	}
}

func CreateRate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCurrencyRate").(*currencyValidator.CurrencyRateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	rate, err := platform.API.CreateCurrencyRate(c.UserContext(), middleware.AuthFromCtx(c), rateInput(reqData))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to add currency.")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Currency added successfully!", rate)
}

func UpdateRate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCurrencyRate").(*currencyValidator.CurrencyRateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	id, _ := c.Locals("id").(uint)
	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)

	if err := platform.API.UpdateCurrencyRate(ctx, auth, id, rateInput(reqData)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update currency.")
	}
	rate, err := platform.API.CurrencyRate(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch currency rate")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Currency updated successfully!", rate)
}

func DeleteRate(c *fiber.Ctx) error {
	id, _ := c.Locals("id").(uint)
	if err := platform.API.DeleteCurrencyRate(c.UserContext(), middleware.AuthFromCtx(c), id); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete currency.")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Currency deleted successfully!", nil)
}

func BulkUpdateRates(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBulkUpdate").(*currencyValidator.BulkUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := make([]platform.RateUpdate, 0, len(reqData.Updates))
	for _, u := range reqData.Updates {
		updates = append(updates, platform.RateUpdate{
			ID:           u.ID,
			FromCurrency: strings.ToUpper(u.FromCurrency),
			Rate:         u.Rate,
		})
	}

	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)
	if err := platform.API.BulkUpdateCurrencyRates(ctx, auth, updates); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update rates")
	}
	rates, err := platform.API.CurrencyRates(ctx, auth)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch currency rates")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rates updated successfully!", rates)
}

// RefreshRates reprices every stored currency from today's public rates.
func RefreshRates(c *fiber.Ctx) error {
	result, err := utils.SyncCurrencyRates(c.UserContext(), platform.API, middleware.AuthFromCtx(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to refresh rates")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Updated %d rates.", len(result.Updated)), result)
}

// TodayRates lists today's public rates, optionally narrowed by ?q on the
// currency code and re-based with ?base.
func TodayRates(c *fiber.Ctx) error {
	rates, err := platform.API.TodayRates(c.UserContext(), c.Query("base"))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to load today's rates. Please try again later.")
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := make([]models.ExchangeRate, 0, len(rates))
		for _, r := range rates {
			if strings.Contains(strings.ToLower(r.Currency), q) {
				filtered = append(filtered, r)
			}
		}
		rates = filtered
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Today's rates.", rates)
}

// Options loads the currency and country pickers concurrently. Both fall
// back to fixed lists, so this never fails.
func Options(c *fiber.Ctx) error {
	var currencies, countries []models.Option
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		currencies = platform.API.CurrencyOptions(ctx)
		return nil
	})
	g.Go(func() error {
		countries = platform.API.CountryOptions(ctx)
		return nil
	})
	_ = g.Wait()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Currency options.", fiber.Map{
		"currencies": currencies,
		"countries":  countries,
	})
}

func historyLogs(c *fiber.Ctx) ([]models.CurrencyLog, string, error) {
	period, _ := c.Locals("period").(string)
	logs, err := platform.API.CurrencyLogs(c.UserContext(), middleware.AuthFromCtx(c))
	if err != nil {
		return nil, period, err
	}
	return utils.FilterLogsByPeriod(logs, period, time.Now()), period, nil
}

func History(c *fiber.Ctx) error {
	logs, period, err := historyLogs(c)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch currency history")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Currency history.", fiber.Map{
		"logs":   logs,
		"period": period,
	})
}

func ExportHistory(c *fiber.Ctx) error {
	logs, period, err := historyLogs(c)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch currency history")
	}
	buf, err := utils.CurrencyLogWorkbook(logs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="currency-history-%s.xlsx"`, period))
	return c.Send(buf.Bytes())
}
