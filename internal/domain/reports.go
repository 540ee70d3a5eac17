package domain

import "github.com/shopspring/decimal"

// DroppedRows counts raw rows discarded by the normalizer, by reason.
type DroppedRows struct {
	BadDate        int `json:"bad_date"`
	BadAmount      int `json:"bad_amount"`
	NegativeAmount int `json:"negative_amount"`
}

// Total returns the number of dropped rows.
func (d DroppedRows) Total() int {
	return d.BadDate + d.BadAmount + d.NegativeAmount
}

// Report summarizes one pipeline run so callers can sanity-check data quality.
type Report struct {
	RunID                 string          `json:"run_id"`
	InputRows             int             `json:"input_rows"`
	ValidRows             int             `json:"valid_rows"`
	Dropped               DroppedRows     `json:"dropped"`
	ObservedDays          int             `json:"observed_days"`
	TotalDays             int             `json:"total_days"`
	StartDate             string          `json:"start_date"`
	EndDate               string          `json:"end_date"`
	Holidays              int             `json:"holidays"`
	Weekends              int             `json:"weekends"`
	Festivals             int             `json:"festivals"`
	FestivalSource        string          `json:"festival_source"`
	Degraded              bool            `json:"degraded"`
	MalformedFestivalRows int             `json:"malformed_festival_rows"`
	BelowMinRecords       bool            `json:"below_min_records"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
}

// SeriesResult is the output of a pipeline run: the reconstructed series and its report.
type SeriesResult struct {
	Series []SeriesRow `json:"series"`
	Report Report      `json:"report"`
}
