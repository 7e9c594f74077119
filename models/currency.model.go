package models

import "strings"

// CurrencyRate is the T-coin price of one unit of a currency
type CurrencyRate struct {
	ID           uint   `json:"id"`
	FromCurrency string `json:"from_currency"`
	Rate         Number `json:"rate"`
	Country      string `json:"country"`
}

// Code returns the upper-cased currency code.
func (r CurrencyRate) Code() string {
	return strings.ToUpper(r.FromCurrency)
}

// CurrencyRateSnapshot is one side of an audit log entry
type CurrencyRateSnapshot struct {
	ID           uint   `json:"id"`
	FromCurrency string `json:"from_currency"`
	Rate         Number `json:"rate"`
	Country      string `json:"country"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// RawCurrencyLog is an audit entry as the rate API returns it
type RawCurrencyLog struct {
	ID          uint                  `json:"id"`
	TcoinRateID uint                  `json:"tcoinRateId"`
	Action      string                `json:"action"`
	OldValue    *CurrencyRateSnapshot `json:"oldValue"`
	NewValue    *CurrencyRateSnapshot `json:"newValue"`
	ChangedAt   string                `json:"changedAt"`
	User        string                `json:"user"`
}

// CurrencyLog is a flattened audit entry
type CurrencyLog struct {
	ID           string  `json:"id"`
	FromCurrency string  `json:"from_currency"`
	OldRate      float64 `json:"old_rate"`
	NewRate      float64 `json:"new_rate"`
	ChangedAt    string  `json:"changed_at"`
	User         string  `json:"user"`
}

// ExchangeRate is one row of today's public exchange rates
type ExchangeRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// Option is a select-box entry
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
