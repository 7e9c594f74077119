package main

import (
	"context"
	"coursedesk/models"
	"coursedesk/platform"
)

func planRates(ctx context.Context, client *platform.Client, mobile, password string) ([]models.CurrencyRate, map[string]float64, error) {
	login, err := client.Login(ctx, mobile, password)
	if err != nil {
		return nil, nil, err
	}
	auth := platform.Auth{Token: login.Token, UserID: login.User.ID, AdminType: login.User.Type}

	stored, err := client.CurrencyRates(ctx, auth)
	if err != nil {
		return nil, nil, err
	}
	rates, err := client.TodayRates(ctx, "")
	if err != nil {
		return nil, nil, err
	}
	today := make(map[string]float64, len(rates))
	for _, r := range rates {
		today[r.Currency] = r.Rate
	}
	return stored, today, nil
}
