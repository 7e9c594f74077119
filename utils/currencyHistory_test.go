package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coursedesk/models"
)

// Wednesday
var reference = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

func TestPeriodStart(t *testing.T) {
	start, ok := PeriodStart("today", reference)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), start)

	start, ok = PeriodStart("week", reference)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), start)

	start, ok = PeriodStart("month", reference)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), start)

	_, ok = PeriodStart("all", reference)
	assert.False(t, ok)
}

func TestFilterLogsByPeriod(t *testing.T) {
	logs := []models.CurrencyLog{
		{ID: "1", ChangedAt: "2024-05-15T08:00:00Z"},
		{ID: "2", ChangedAt: "2024-05-13T08:00:00Z"},
		{ID: "3", ChangedAt: "2024-05-02T08:00:00Z"},
		{ID: "4", ChangedAt: "2024-04-30T08:00:00Z"},
		{ID: "5", ChangedAt: "yesterday"},
	}

	ids := func(in []models.CurrencyLog) []string {
		out := []string{}
		for _, l := range in {
			out = append(out, l.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(FilterLogsByPeriod(logs, "all", reference)))
	assert.Equal(t, []string{"1"}, ids(FilterLogsByPeriod(logs, "today", reference)))
	assert.Equal(t, []string{"1", "2"}, ids(FilterLogsByPeriod(logs, "week", reference)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterLogsByPeriod(logs, "month", reference)))
}
