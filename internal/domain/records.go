package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-level layout used for every date read or written by the pipeline.
const DateLayout = "2006-01-02"

// Column names of the raw invoice, festival calendar and output tables.
const (
	ColumnDate         = "Date"
	ColumnAmount       = "Amount"
	ColumnFestivalName = "Festival_Name"
	ColumnHolidayFlag  = "Holiday_flag"
	ColumnWeekendFlag  = "Weekend_flag"
	ColumnFestivalFlag = "Festival_flag"
)

// SeriesColumns is the exact column order of the reconstructed series artifact.
var SeriesColumns = []string{
	ColumnDate,
	ColumnAmount,
	ColumnHolidayFlag,
	ColumnWeekendFlag,
	ColumnFestivalFlag,
	ColumnFestivalName,
}

// RawRecord is a single validated transaction row.
type RawRecord struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyRecord holds the total amount of one observed day. Dates are unique.
type DailyRecord struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// FestivalEntry is one row of the festival calendar. Several entries may share a date.
type FestivalEntry struct {
	Date         time.Time `json:"date"`
	FestivalName string    `json:"festival_name"`
}

// SeriesRow is one calendar day of the reconstructed daily series.
type SeriesRow struct {
	Date         time.Time       `json:"Date"`
	Amount       decimal.Decimal `json:"Amount"`
	HolidayFlag  int             `json:"Holiday_flag"`
	WeekendFlag  int             `json:"Weekend_flag"`
	FestivalFlag int             `json:"Festival_flag"`
	FestivalName string          `json:"Festival_Name"`
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
