package main

import (
	"context"
	"coursedesk/config"
	"coursedesk/platform"
	"coursedesk/utils"
	"flag"
	"log"
)

// Reprices every stored currency once, signing in with the rate-sync
// service account. -dry-run prints the planned updates without sending them.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned updates without sending them")
	flag.Parse()

	config.LoadConfig()
	cfg := config.AppConfig
	if cfg.RateSyncMobile == "" || cfg.RateSyncPassword == "" {
		log.Fatal("RATE_SYNC_MOBILE and RATE_SYNC_PASSWORD must be set")
	}

	client := platform.New(platform.Config{
		BaseURL:      cfg.PlatformApiURL,
		RateURL:      cfg.RateApiURL,
		ExchangeURL:  cfg.ExchangeApiURL,
		ExchangeBase: cfg.ExchangeBaseCurrency,
		Timeout:      cfg.HTTPTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout*3)
	defer cancel()

	if *dryRun {
		stored, today, err := planRates(ctx, client, cfg.RateSyncMobile, cfg.RateSyncPassword)
		if err != nil {
			log.Fatalf("Dry run failed: %v", err)
		}
		for _, rate := range stored {
			if quote, ok := today[rate.Code()]; ok && quote != 0 {
				log.Printf("%s: %s -> %f", rate.Code(), rate.Rate, 1/quote)
			} else {
				log.Printf("%s: skipped, no public rate", rate.Code())
			}
		}
		return
	}

	result, err := utils.SyncWithServiceAccount(ctx, client, cfg.RateSyncMobile, cfg.RateSyncPassword)
	if err != nil {
		log.Fatalf("Rate sync failed: %v", err)
	}
	log.Printf("Rate sync complete. Updated: %d, Skipped: %v", len(result.Updated), result.Skipped)
}
