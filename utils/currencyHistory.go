package utils

import (
	"time"

	"github.com/jinzhu/now"

	"coursedesk/models"
)

// PeriodStart returns the start of the named period containing t. ok is
// false for "all" and unknown periods.
func PeriodStart(period string, t time.Time) (time.Time, bool) {
	n := now.With(t)
	switch period {
	case "today":
		return n.BeginningOfDay(), true
	case "week":
		return n.BeginningOfWeek(), true
	case "month":
		return n.BeginningOfMonth(), true
	default:
		return time.Time{}, false
	}
}

// FilterLogsByPeriod keeps the log entries changed since the start of the
// period. Entries with an unreadable timestamp only survive the "all" period.
func FilterLogsByPeriod(logs []models.CurrencyLog, period string, t time.Time) []models.CurrencyLog {
	start, ok := PeriodStart(period, t)
	if !ok {
		return logs
	}

	filtered := make([]models.CurrencyLog, 0, len(logs))
	for _, entry := range logs {
		changedAt, err := time.Parse(time.RFC3339, entry.ChangedAt)
		if err != nil {
			continue
		}
		if !changedAt.Before(start) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
