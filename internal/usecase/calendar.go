package usecase

import (
	"time"

	"daily-series/internal/domain"

	"github.com/shopspring/decimal"
)

// CalendarDay is one day of the reconstructed calendar before flags are derived.
// Observed is false for days filled in because no record existed.
type CalendarDay struct {
	Date     time.Time
	Amount   decimal.Decimal
	Observed bool
}

// ReconstructCalendar expands the sorted daily records into every calendar day
// between the first and last observed date, inclusive. Missing days get a zero
// amount and Observed=false.
func ReconstructCalendar(daily []domain.DailyRecord) ([]CalendarDay, error) {
	if len(daily) == 0 {
		return nil, domain.ErrEmptySeries
	}
	start := domain.Day(daily[0].Date)
	end := domain.Day(daily[len(daily)-1].Date)

	days := make([]CalendarDay, 0, int(end.Sub(start).Hours()/24)+1)
	next := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := CalendarDay{Date: d, Amount: decimal.Zero}
		if next < len(daily) && domain.Day(daily[next].Date).Equal(d) {
			day.Amount = daily[next].Amount
			day.Observed = true
			next++
		}
		days = append(days, day)
	}
	return days, nil
}
