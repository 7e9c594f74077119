package platform

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"

	"coursedesk/models"
)

var errRatesUnavailable = errors.New("failed to fetch rates")

var (
	fallbackCurrencies = []models.Option{
		{Value: "USD", Label: "US Dollar (USD)"},
		{Value: "EUR", Label: "Euro (EUR)"},
		{Value: "BDT", Label: "Bangladeshi Taka (BDT)"},
		{Value: "GBP", Label: "British Pound (GBP)"},
		{Value: "CAD", Label: "Canadian Dollar (CAD)"},
	}
	fallbackCountries = []models.Option{
		{Value: "United States", Label: "United States"},
		{Value: "Bangladesh", Label: "Bangladesh"},
		{Value: "Germany", Label: "Germany"},
		{Value: "Canada", Label: "Canada"},
		{Value: "United Kingdom", Label: "United Kingdom"},
	}
)

// TodayRates returns today's public exchange rates against base, positive
// rates only, sorted by currency code.
func (c *Client) TodayRates(ctx context.Context, base string) ([]models.ExchangeRate, error) {
	if base == "" {
		base = c.cfg.ExchangeBase
	}
	url := strings.TrimRight(c.cfg.ExchangeURL, "/") + "/latest/" + strings.ToUpper(base)
	body, err := c.getPublic(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Result string                   `json:"result"`
		Rates  map[string]models.Number `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Result != "success" || payload.Rates == nil {
		return nil, errRatesUnavailable
	}

	rates := make([]models.ExchangeRate, 0, len(payload.Rates))
	for code, rate := range payload.Rates {
		if rate.Float64() > 0 {
			rates = append(rates, models.ExchangeRate{Currency: code, Rate: rate.Float64()})
		}
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Currency < rates[j].Currency })
	return rates, nil
}

// CurrencyOptions lists every currency in use by some country, labelled
// "Name (CODE)". Falls back to a short fixed list when the lookup fails.
func (c *Client) CurrencyOptions(ctx context.Context) []models.Option {
	body, err := c.getPublic(ctx, strings.TrimRight(c.cfg.CountryURL, "/")+"/all",
		map[string]string{"fields": "currencies,name"})
	if err != nil {
		log.Printf("[PLATFORM] warning: currency list unavailable, using fallback: %v", err)
		return fallbackCurrencies
	}

	var countries []struct {
		Currencies map[string]struct {
			Name string `json:"name"`
		} `json:"currencies"`
	}
	if err := json.Unmarshal(body, &countries); err != nil {
		log.Printf("[PLATFORM] warning: unreadable currency list, using fallback: %v", err)
		return fallbackCurrencies
	}

	seen := make(map[string]bool)
	options := make([]models.Option, 0)
	for _, country := range countries {
		for code, details := range country.Currencies {
			if seen[code] {
				continue
			}
			seen[code] = true
			name := details.Name
			if name == "" {
				name = code
			}
			options = append(options, models.Option{Value: code, Label: name + " (" + code + ")"})
		}
	}
	sortOptions(options)
	return options
}

func (c *Client) CountryOptions(ctx context.Context) []models.Option {
	body, err := c.getPublic(ctx, strings.TrimRight(c.cfg.CountryURL, "/")+"/all",
		map[string]string{"fields": "name"})
	if err != nil {
		log.Printf("[PLATFORM] warning: country list unavailable, using fallback: %v", err)
		return fallbackCountries
	}

	var countries []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
	}
	if err := json.Unmarshal(body, &countries); err != nil {
		log.Printf("[PLATFORM] warning: unreadable country list, using fallback: %v", err)
		return fallbackCountries
	}

	options := make([]models.Option, 0, len(countries))
	for _, country := range countries {
		if country.Name.Common == "" {
			continue
		}
		options = append(options, models.Option{Value: country.Name.Common, Label: country.Name.Common})
	}
	sortOptions(options)
	return options
}

func sortOptions(options []models.Option) {
	sort.SliceStable(options, func(i, j int) bool {
		return strings.ToLower(options[i].Label) < strings.ToLower(options[j].Label)
	})
}
