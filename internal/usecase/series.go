package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"daily-series/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input selects the raw records for one pipeline run. Table takes precedence
// over Path when both are set.
type Input struct {
	Path         string
	Table        *domain.Table
	FestivalPath string
	// MinRecords flags series with fewer observed days in the report. Zero disables it.
	MinRecords int
}

// SeriesUseCase orchestrates the daily series reconstruction.
type SeriesUseCase struct {
	repo     TableRepository
	resolver FestivalResolver
	logger   *slog.Logger
}

// NewSeriesUseCase creates a new instance of the usecase. A nil logger uses
// slog.Default(); a nil resolver never finds a festival calendar, so every
// run is degraded.
func NewSeriesUseCase(repo TableRepository, resolver FestivalResolver, logger *slog.Logger) *SeriesUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if resolver == nil {
		resolver = noFestivals{}
	}
	return &SeriesUseCase{
		repo:     repo,
		resolver: resolver,
		logger:   logger.With(slog.String("component", "series")),
	}
}

type noFestivals struct{}

func (noFestivals) Resolve(string) (string, bool) { return "", false }

// Build runs normalization, daily aggregation, calendar reconstruction, flag
// derivation and the festival join, in that order.
func (uc *SeriesUseCase) Build(ctx context.Context, in Input) (*domain.SeriesResult, error) {
	report := domain.Report{RunID: uuid.NewString()}
	log := uc.logger.With(slog.String("run_id", report.RunID))

	// Step 1: Data Ingestion
	table, err := uc.loadInput(ctx, in)
	if err != nil {
		return nil, err
	}
	report.InputRows = len(table.Rows)

	records, dropped, err := NormalizeRecords(table)
	if err != nil {
		return nil, err
	}
	report.ValidRows = len(records)
	report.Dropped = dropped
	if dropped.Total() > 0 {
		log.Warn("Dropped invalid rows",
			slog.Int("bad_date", dropped.BadDate),
			slog.Int("bad_amount", dropped.BadAmount),
			slog.Int("negative_amount", dropped.NegativeAmount))
	}

	// Step 2: Daily totals
	daily := AggregateDaily(records)
	report.ObservedDays = len(daily)
	log.Debug("Aggregated daily records", slog.Int("valid_rows", len(records)), slog.Int("days", len(daily)))

	// Step 3: Calendar and flags
	days, err := ReconstructCalendar(daily)
	if err != nil {
		return nil, fmt.Errorf("could not reconstruct calendar from %d valid rows: %w", len(records), err)
	}
	rows := DeriveFlags(days)

	// Step 4: Festival calendar
	if err := uc.mergeFestivalCalendar(ctx, in.FestivalPath, rows, &report, log); err != nil {
		return nil, err
	}

	summarize(rows, &report)
	if in.MinRecords > 0 && report.ObservedDays < in.MinRecords {
		report.BelowMinRecords = true
		log.Warn("Series has fewer observed days than required",
			slog.Int("observed_days", report.ObservedDays),
			slog.Int("min_records", in.MinRecords))
	}

	log.Info("Daily series built",
		slog.String("start", report.StartDate),
		slog.String("end", report.EndDate),
		slog.Int("days", report.TotalDays),
		slog.Int("holidays", report.Holidays),
		slog.Int("weekends", report.Weekends),
		slog.Int("festivals", report.Festivals),
		slog.Bool("degraded", report.Degraded))

	return &domain.SeriesResult{Series: rows, Report: report}, nil
}

func (uc *SeriesUseCase) loadInput(ctx context.Context, in Input) (*domain.Table, error) {
	if in.Table != nil {
		return in.Table, nil
	}
	if in.Path == "" {
		return nil, domain.ErrNoInput
	}
	table, err := uc.repo.ReadTable(ctx, in.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read input records: %w", err)
	}
	return table, nil
}

func (uc *SeriesUseCase) mergeFestivalCalendar(ctx context.Context, explicit string, rows []domain.SeriesRow, report *domain.Report, log *slog.Logger) error {
	path, ok := uc.resolver.Resolve(explicit)
	if !ok {
		report.Degraded = true
		log.Warn("No festival calendar found, proceeding without festival data", slog.String("path", explicit))
		return nil
	}

	table, err := uc.repo.ReadTable(ctx, path)
	if err != nil {
		return fmt.Errorf("could not read festival calendar: %w", err)
	}
	entries, malformed, err := ParseFestivalEntries(table)
	if err != nil {
		return err
	}
	if malformed > 0 {
		log.Warn("Skipped malformed festival rows", slog.String("path", path), slog.Int("count", malformed))
	}

	report.FestivalSource = path
	report.MalformedFestivalRows = malformed
	MergeFestivals(rows, GroupFestivals(entries))
	return nil
}

func summarize(rows []domain.SeriesRow, report *domain.Report) {
	total := decimal.Zero
	for _, r := range rows {
		report.Holidays += r.HolidayFlag
		report.Weekends += r.WeekendFlag
		report.Festivals += r.FestivalFlag
		total = total.Add(r.Amount)
	}
	report.TotalDays = len(rows)
	report.TotalAmount = total
	if len(rows) > 0 {
		report.StartDate = rows[0].Date.Format(domain.DateLayout)
		report.EndDate = rows[len(rows)-1].Date.Format(domain.DateLayout)
	}
}

// RollupFile reads the table at path and sums amountColumn per groupBy key.
func (uc *SeriesUseCase) RollupFile(ctx context.Context, path string, groupBy []string, amountColumn string) (*domain.Table, error) {
	table, err := uc.repo.ReadTable(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not read rollup input: %w", err)
	}
	out, err := Rollup(table, groupBy, amountColumn)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Rolled up table",
		slog.String("path", path),
		slog.Any("group_by", groupBy),
		slog.Int("input_rows", len(table.Rows)),
		slog.Int("groups", len(out.Rows)))
	return out, nil
}
