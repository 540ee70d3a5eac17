package usecase

import (
	"fmt"
	"strings"
	"time"

	"daily-series/internal/domain"
)

// lenientDateLayouts are tried in order for festival and rollup dates.
var lenientDateLayouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/1/2",
	"1/2/2006",
	"2-Jan-2006",
	"January 2, 2006",
}

// ParseFestivalEntries reads the festival calendar table. Rows with an
// unparseable date or a blank name are skipped and counted as malformed.
func ParseFestivalEntries(table *domain.Table) ([]domain.FestivalEntry, int, error) {
	idx, missing := table.Indexes(domain.ColumnDate, domain.ColumnFestivalName)
	if len(missing) > 0 {
		return nil, 0, fmt.Errorf("festival calendar: %w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	var (
		entries   []domain.FestivalEntry
		malformed int
	)
	for i := range table.Rows {
		date, ok := parseLenientDate(table.Cell(i, idx[0]))
		name := table.Cell(i, idx[1])
		if !ok || name == "" {
			malformed++
			continue
		}
		entries = append(entries, domain.FestivalEntry{Date: date, FestivalName: name})
	}
	return entries, malformed, nil
}

func parseLenientDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range lenientDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Day(t), true
		}
	}
	return time.Time{}, false
}

// GroupFestivals joins the names of entries sharing a date with a comma,
// keeping the order in which they appear.
func GroupFestivals(entries []domain.FestivalEntry) map[string]string {
	grouped := make(map[string]string)
	for _, e := range entries {
		key := e.Date.Format(domain.DateLayout)
		if prev, ok := grouped[key]; ok {
			grouped[key] = prev + "," + e.FestivalName
			continue
		}
		grouped[key] = e.FestivalName
	}
	return grouped
}

// MergeFestivals sets the festival fields of every row whose date has grouped
// names and returns how many rows matched. Unmatched rows keep flag 0 and an
// empty name.
func MergeFestivals(rows []domain.SeriesRow, grouped map[string]string) int {
	matched := 0
	for i := range rows {
		name, ok := grouped[rows[i].Date.Format(domain.DateLayout)]
		if !ok || name == "" {
			rows[i].FestivalFlag = 0
			rows[i].FestivalName = ""
			continue
		}
		rows[i].FestivalFlag = 1
		rows[i].FestivalName = name
		matched++
	}
	return matched
}
