package usecase

import (
	"sort"

	"daily-series/internal/domain"
)

// AggregateDaily sums records per calendar day and returns one row per
// distinct date in ascending order.
func AggregateDaily(records []domain.RawRecord) []domain.DailyRecord {
	totals := make(map[string]int)
	var daily []domain.DailyRecord
	for _, r := range records {
		key := r.Date.Format(domain.DateLayout)
		if i, ok := totals[key]; ok {
			daily[i].Amount = daily[i].Amount.Add(r.Amount)
			continue
		}
		totals[key] = len(daily)
		daily = append(daily, domain.DailyRecord{Date: domain.Day(r.Date), Amount: r.Amount})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})
	return daily
}
