package utils

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"coursedesk/platform"
)

// RateSyncResult lists what a sync pushed and which currencies it left alone
type RateSyncResult struct {
	Updated []platform.RateUpdate `json:"updated"`
	Skipped []string              `json:"skipped"`
}

// SyncCurrencyRates prices every stored currency in the exchange base
// currency: the new rate is 1 / rates[code] from today's public rates.
// Currencies without a usable public rate keep their value.
func SyncCurrencyRates(ctx context.Context, client *platform.Client, auth platform.Auth) (*RateSyncResult, error) {
	stored, err := client.CurrencyRates(ctx, auth)
	if err != nil {
		return nil, err
	}
	today, err := client.TodayRates(ctx, "")
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]float64, len(today))
	for _, r := range today {
		byCode[r.Currency] = r.Rate
	}

	result := &RateSyncResult{Updated: []platform.RateUpdate{}, Skipped: []string{}}
	for _, rate := range stored {
		code := rate.Code()
		quote, ok := byCode[code]
		if !ok || quote == 0 {
			result.Skipped = append(result.Skipped, code)
			continue
		}
		result.Updated = append(result.Updated, platform.RateUpdate{
			ID:           rate.ID,
			FromCurrency: code,
			Rate:         1 / quote,
		})
	}

	if err := client.BulkUpdateCurrencyRates(ctx, auth, result.Updated); err != nil {
		return nil, err
	}
	return result, nil
}

// SyncWithServiceAccount signs in with the configured service credentials
// and runs one sync.
func SyncWithServiceAccount(ctx context.Context, client *platform.Client, mobile, password string) (*RateSyncResult, error) {
	login, err := client.Login(ctx, mobile, password)
	if err != nil {
		return nil, err
	}
	auth := platform.Auth{Token: login.Token, UserID: login.User.ID, AdminType: login.User.Type}
	return SyncCurrencyRates(ctx, client, auth)
}

// InitializeRateSyncScheduler starts the cron job. It returns nil when the
// schedule or the credentials are missing.
func InitializeRateSyncScheduler(client *platform.Client, schedule, mobile, password string, timeout time.Duration) *cron.Cron {
	if schedule == "" || mobile == "" || password == "" {
		return nil
	}
	log.Println("[RATE-SYNC] Initializing rate sync scheduler...")

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Println("[RATE-SYNC] Running scheduled currency rate sync...")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := SyncWithServiceAccount(ctx, client, mobile, password)
		if err != nil {
			log.Printf("[RATE-SYNC] Sync failed: %v", err)
			return
		}
		log.Printf("[RATE-SYNC] Updated %d rates, skipped %v", len(result.Updated), result.Skipped)
	})
	if err != nil {
		log.Printf("[RATE-SYNC] Invalid RATE_SYNC_SCHEDULE %q: %v", schedule, err)
		return nil
	}

	c.Start()
	log.Printf("[RATE-SYNC] Rate sync scheduler started - schedule %q", schedule)
	return c
}
