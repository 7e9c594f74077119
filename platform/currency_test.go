package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk/models"
)

func TestCurrencyRates_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":1,"from_currency":"usd","rate":"0.0091","country":"United States"}]}`))
	}))
	defer srv.Close()

	rates, err := newTestClient(t, srv).CurrencyRates(context.Background(), testAuth)

	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "USD", rates[0].Code())
	assert.InDelta(t, 0.0091, rates[0].Rate.Float64(), 1e-9)
}

func TestCurrencyRates_SuccessFalseIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"data":[{"id":1}]}`))
	}))
	defer srv.Close()

	rates, err := newTestClient(t, srv).CurrencyRates(context.Background(), testAuth)

	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestCreateCurrencyRate_UppercasesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in CurrencyRateInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "EUR", in.FromCurrency)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":5,"from_currency":"EUR","rate":0.0077}}`))
	}))
	defer srv.Close()

	rate, err := newTestClient(t, srv).CreateCurrencyRate(context.Background(), testAuth,
		CurrencyRateInput{FromCurrency: " eur ", Rate: 0.0077, Country: "Germany"})

	require.NoError(t, err)
	assert.Equal(t, uint(5), rate.ID)
}

func TestBulkUpdate_EmptyMakesNoRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(t, srv).BulkUpdateCurrencyRates(context.Background(), testAuth, nil))
}

func TestCurrencyLogs_Flattened(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tcoin-rates/all/logs", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[
			{"id":3,"oldValue":{"rate":"0.5"},"newValue":{"from_currency":"gbp","rate":0.6},"changedAt":"2024-05-01T10:00:00Z","user":"ops"},
			{"id":4,"changedAt":"2024-05-02T10:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	logs, err := newTestClient(t, srv).CurrencyLogs(context.Background(), testAuth)

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.CurrencyLog{ID: "3", FromCurrency: "GBP", OldRate: 0.5, NewRate: 0.6, ChangedAt: "2024-05-01T10:00:00Z", User: "ops"}, logs[0])
	assert.Equal(t, "N/A", logs[1].FromCurrency)
	assert.Equal(t, "N/A", logs[1].User)
	assert.Zero(t, logs[1].NewRate)
}

func TestTodayRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/BDT", r.URL.Path)
		w.Write([]byte(`{"result":"success","rates":{"USD":0.0091,"BDT":1,"EUR":0.0084,"XXX":0}}`))
	}))
	defer srv.Close()

	rates, err := newTestClient(t, srv).TodayRates(context.Background(), "bdt")

	require.NoError(t, err)
	assert.Equal(t, []models.ExchangeRate{
		{Currency: "BDT", Rate: 1},
		{Currency: "EUR", Rate: 0.0084},
		{Currency: "USD", Rate: 0.0091},
	}, rates)
}

func TestTodayRates_ResultNotSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).TodayRates(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, errRatesUnavailable)
}

func TestReferenceOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fields") == "name" {
			w.Write([]byte(`[{"name":{"common":"japan"}},{"name":{"common":"Bangladesh"}},{"name":{}}]`))
			return
		}
		w.Write([]byte(`[
			{"currencies":{"USD":{"name":"United States dollar"}}},
			{"currencies":{"USD":{"name":"United States dollar"},"EUR":{"name":"Euro"}}},
			{"currencies":{}}
		]`))
	}))
	defer srv.Close()
	client := newTestClient(t, srv)

	currencies := client.CurrencyOptions(context.Background())
	assert.Equal(t, []models.Option{
		{Value: "EUR", Label: "Euro (EUR)"},
		{Value: "USD", Label: "United States dollar (USD)"},
	}, currencies)

	countries := client.CountryOptions(context.Background())
	assert.Equal(t, []models.Option{
		{Value: "Bangladesh", Label: "Bangladesh"},
		{Value: "japan", Label: "japan"},
	}, countries)
}

func TestReferenceOptions_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	client := newTestClient(t, srv)

	assert.Equal(t, fallbackCurrencies, client.CurrencyOptions(context.Background()))
	assert.Equal(t, fallbackCountries, client.CountryOptions(context.Background()))
}
