package usecase

import (
	"fmt"
	"strings"
	"time"

	"daily-series/internal/domain"

	"github.com/shopspring/decimal"
)

// NormalizeRecords extracts valid Date/Amount pairs from table. Rows with an
// unparseable date or amount, or a negative amount, are dropped and counted.
// The table is only read, never modified.
func NormalizeRecords(table *domain.Table) ([]domain.RawRecord, domain.DroppedRows, error) {
	var dropped domain.DroppedRows
	if table == nil {
		return nil, dropped, domain.ErrNoInput
	}
	idx, missing := table.Indexes(domain.ColumnDate, domain.ColumnAmount)
	if len(missing) > 0 {
		return nil, dropped, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}
	dateCol, amountCol := idx[0], idx[1]

	records := make([]domain.RawRecord, 0, len(table.Rows))
	for i := range table.Rows {
		date, err := parseRecordDate(table.Cell(i, dateCol))
		if err != nil {
			dropped.BadDate++
			continue
		}
		amount, err := parseAmount(table.Cell(i, amountCol))
		if err != nil {
			dropped.BadAmount++
			continue
		}
		if amount.IsNegative() {
			dropped.NegativeAmount++
			continue
		}
		records = append(records, domain.RawRecord{Date: date, Amount: amount})
	}
	return records, dropped, nil
}

// parseRecordDate accepts year-month-day only; one-digit months and days are tolerated.
func parseRecordDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-1-2", s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.Day(t), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(s)
}
