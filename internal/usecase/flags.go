package usecase

import (
	"time"

	"daily-series/internal/domain"
)

// DeriveFlags turns calendar days into series rows with the holiday and weekend
// flags set. Holiday means the day was not observed, whatever its amount.
// Festival fields are left at their defaults.
func DeriveFlags(days []CalendarDay) []domain.SeriesRow {
	rows := make([]domain.SeriesRow, len(days))
	for i, d := range days {
		rows[i] = domain.SeriesRow{
			Date:        d.Date,
			Amount:      d.Amount,
			HolidayFlag: boolFlag(!d.Observed),
			WeekendFlag: boolFlag(IsWeekend(d.Date)),
		}
	}
	return rows
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
