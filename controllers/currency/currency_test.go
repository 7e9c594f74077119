package currencyControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk/models"
	"coursedesk/platform"
	commonValidator "coursedesk/validators/common"
	currencyValidator "coursedesk/validators/currency"
)

func currencyApp(t *testing.T, handler http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	platform.API = platform.New(platform.Config{
		BaseURL: srv.URL, RateURL: srv.URL, ExchangeURL: srv.URL, CountryURL: srv.URL,
		Timeout: 5 * time.Second,
	})

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("auth", platform.Auth{Token: "platform-token"})
		return c.Next()
	})
	app.Get("/rates/today", TodayRates)
	app.Put("/rates/bulk", currencyValidator.BulkUpdate(), BulkUpdateRates)
	app.Put("/rates/:id", commonValidator.IDParams("id"), currencyValidator.CurrencyRate(), UpdateRate)
	app.Get("/history", currencyValidator.History(), History)
	return app
}

func decode(t *testing.T, resp *http.Response, data interface{}) string {
	t.Helper()
	var env struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env.Message
}

func TestTodayRates_Query(t *testing.T) {
	app := currencyApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Write([]byte(`{"result":"success","rates":{"USD":1,"EUR":0.92,"BDT":110.5}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/rates/today?base=usd&q=eu", nil), -1)
	require.NoError(t, err)

	var rates []models.ExchangeRate
	decode(t, resp, &rates)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []models.ExchangeRate{{Currency: "EUR", Rate: 0.92}}, rates)
}

func TestTodayRates_Unavailable(t *testing.T) {
	app := currencyApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error"}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/rates/today", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Failed to load today's rates. Please try again later.", decode(t, resp, nil))
}

func TestUpdateRate_Validation(t *testing.T) {
	app := currencyApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call %s", r.URL.Path)
	})

	req := httptest.NewRequest(http.MethodPut, "/rates/3", strings.NewReader(`{"from_currency":"US","rate":0,"country":"United States"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var errs map[string]string
	decode(t, resp, &errs)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, errs, "from_currency")
	assert.Contains(t, errs, "rate")
}

func TestBulkUpdateRates(t *testing.T) {
	var pushed map[string][]platform.RateUpdate
	app := currencyApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tcoin-rates/bulk/update":
			json.NewDecoder(r.Body).Decode(&pushed)
			w.Write([]byte(`{"success":true}`))
		case "/api/tcoin-rates":
			w.Write([]byte(`{"success":true,"data":[{"id":1,"from_currency":"USD","rate":0.0095}]}`))
		}
	})

	req := httptest.NewRequest(http.MethodPut, "/rates/bulk", strings.NewReader(`{"updates":[{"id":1,"from_currency":"usd","rate":0.0095}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, pushed["updates"], 1)
	assert.Equal(t, "USD", pushed["updates"][0].FromCurrency)
}

func TestHistory_Period(t *testing.T) {
	today := time.Now().UTC().Format(time.RFC3339)
	app := currencyApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"newValue":{"from_currency":"usd","rate":1},"changedAt":"` + today + `"},
			{"id":2,"newValue":{"from_currency":"eur","rate":1},"changedAt":"2001-01-01T00:00:00Z"}
		]}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/history?period=month", nil), -1)
	require.NoError(t, err)
	var data struct {
		Logs   []models.CurrencyLog `json:"logs"`
		Period string               `json:"period"`
	}
	decode(t, resp, &data)
	assert.Equal(t, "month", data.Period)
	require.Len(t, data.Logs, 1)
	assert.Equal(t, "USD", data.Logs[0].FromCurrency)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/history?period=decade", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
