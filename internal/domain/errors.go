package domain

import "errors"

// Failure classes of the pipeline. Row-level defects and a missing festival
// calendar are not errors; they are reported in Report.
var (
	ErrNoInput         = errors.New("neither an input file nor an in-memory table was supplied")
	ErrMissingColumns  = errors.New("required columns missing")
	ErrEmptySeries     = errors.New("no valid records remain to build a daily series")
	ErrInvalidGrouping = errors.New("at least one grouping column is required")
)
