package platform

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"coursedesk/models"
)

// rateData unwraps the rate API's {success, data} envelope. An explicit
// success=false is logged and treated as an empty payload.
func rateData(body []byte) []byte {
	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[PLATFORM] warning: unexpected rate API response: %v", err)
		return nil
	}
	if envelope.Success != nil && !*envelope.Success {
		log.Printf("[PLATFORM] warning: rate API reported success=false")
		return nil
	}
	return envelope.Data
}

func (c *Client) CurrencyRates(ctx context.Context, auth Auth) ([]models.CurrencyRate, error) {
	body, err := c.getJSON(ctx, c.rates, auth, "/api/tcoin-rates", nil, "Failed to fetch currency rates")
	if err != nil {
		return nil, err
	}
	return decodeList[models.CurrencyRate](rateData(body)), nil
}

func (c *Client) CurrencyRate(ctx context.Context, auth Auth, id uint) (models.CurrencyRate, error) {
	body, err := c.getJSON(ctx, c.rates, auth, idPath("/api/tcoin-rates", id), nil, "Failed to fetch currency rate")
	if err != nil {
		return models.CurrencyRate{}, err
	}
	return decodeObject[models.CurrencyRate](rateData(body)), nil
}

// CurrencyRateInput is the write shape of a rate
type CurrencyRateInput struct {
	FromCurrency string  `json:"from_currency"`
	Rate         float64 `json:"rate"`
	Country      string  `json:"country"`
}

func (c *Client) CreateCurrencyRate(ctx context.Context, auth Auth, in CurrencyRateInput) (models.CurrencyRate, error) {
	in.FromCurrency = strings.ToUpper(strings.TrimSpace(in.FromCurrency))
	body, err := c.sendJSON(ctx, c.rates, auth, http.MethodPost, "/api/tcoin-rates", in, "Failed to add currency.")
	if err != nil {
		return models.CurrencyRate{}, err
	}
	return decodeObject[models.CurrencyRate](rateData(body)), nil
}

func (c *Client) UpdateCurrencyRate(ctx context.Context, auth Auth, id uint, in CurrencyRateInput) error {
	in.FromCurrency = strings.ToUpper(strings.TrimSpace(in.FromCurrency))
	_, err := c.sendJSON(ctx, c.rates, auth, http.MethodPut, idPath("/api/tcoin-rates", id), in, "Failed to update currency.")
	return err
}

func (c *Client) DeleteCurrencyRate(ctx context.Context, auth Auth, id uint) error {
	return c.delete(ctx, c.rates, auth, idPath("/api/tcoin-rates", id), "Failed to delete currency.")
}

// RateUpdate is one row of a bulk update
type RateUpdate struct {
	ID           uint    `json:"id"`
	FromCurrency string  `json:"from_currency"`
	Rate         float64 `json:"rate"`
}

func (c *Client) BulkUpdateCurrencyRates(ctx context.Context, auth Auth, updates []RateUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	_, err := c.sendJSON(ctx, c.rates, auth, http.MethodPut, "/api/tcoin-rates/bulk/update",
		map[string][]RateUpdate{"updates": updates}, "Failed to update rates")
	return err
}

// CurrencyLogs returns the rate audit trail flattened for display.
func (c *Client) CurrencyLogs(ctx context.Context, auth Auth) ([]models.CurrencyLog, error) {
	body, err := c.getJSON(ctx, c.rates, auth, "/api/tcoin-rates/all/logs", nil, "Failed to fetch currency history")
	if err != nil {
		return nil, err
	}
	raw := decodeList[models.RawCurrencyLog](rateData(body))
	logs := make([]models.CurrencyLog, 0, len(raw))
	for _, entry := range raw {
		logs = append(logs, flattenLog(entry))
	}
	return logs, nil
}

func flattenLog(entry models.RawCurrencyLog) models.CurrencyLog {
	out := models.CurrencyLog{
		ID:           strconv.FormatUint(uint64(entry.ID), 10),
		FromCurrency: "N/A",
		ChangedAt:    entry.ChangedAt,
		User:         entry.User,
	}
	if entry.NewValue != nil {
		if code := strings.ToUpper(entry.NewValue.FromCurrency); code != "" {
			out.FromCurrency = code
		}
		out.NewRate = entry.NewValue.Rate.Float64()
	}
	if entry.OldValue != nil {
		out.OldRate = entry.OldValue.Rate.Float64()
	}
	if out.User == "" {
		out.User = "N/A"
	}
	return out
}
