package gateway

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"daily-series/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Format is an output encoding for the reconstructed series.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

const seriesSheet = "Series"

// SeriesWriter writes the reconstructed series and rollup tables to disk.
type SeriesWriter struct{}

// NewSeriesWriter creates a new writer instance.
func NewSeriesWriter() *SeriesWriter {
	return &SeriesWriter{}
}

// Write stores rows at path in the requested format, creating the parent directory.
func (w *SeriesWriter) Write(path string, format Format, rows []domain.SeriesRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	switch format {
	case FormatXLSX:
		return writeSeriesXLSX(path, rows)
	case FormatCSV, FormatJSON:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", path, err)
		}
		defer file.Close()
		if format == FormatJSON {
			err = EncodeSeriesJSON(file, rows)
		} else {
			err = EncodeSeriesCSV(file, rows)
		}
		if err != nil {
			return err
		}
		return file.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteTable stores a table as CSV at path, or on out when path is empty.
func (w *SeriesWriter) WriteTable(path string, out io.Writer, table *domain.Table) error {
	if path == "" {
		return encodeTableCSV(out, table)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()
	if err := encodeTableCSV(file, table); err != nil {
		return err
	}
	return file.Close()
}

// EncodeSeriesCSV writes the series with the artifact's header to out.
func EncodeSeriesCSV(out io.Writer, rows []domain.SeriesRow) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(domain.SeriesColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(seriesRecord(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

type seriesJSONRow struct {
	Date         string      `json:"Date"`
	Amount       json.Number `json:"Amount"`
	HolidayFlag  int         `json:"Holiday_flag"`
	WeekendFlag  int         `json:"Weekend_flag"`
	FestivalFlag int         `json:"Festival_flag"`
	FestivalName string      `json:"Festival_Name"`
}

// EncodeSeriesJSON writes the series as an indented JSON array of row objects.
func EncodeSeriesJSON(out io.Writer, rows []domain.SeriesRow) error {
	payload := make([]seriesJSONRow, len(rows))
	for i, r := range rows {
		payload[i] = seriesJSONRow{
			Date:         r.Date.Format(domain.DateLayout),
			Amount:       json.Number(r.Amount.String()),
			HolidayFlag:  r.HolidayFlag,
			WeekendFlag:  r.WeekendFlag,
			FestivalFlag: r.FestivalFlag,
			FestivalName: r.FestivalName,
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}
	return nil
}

func writeSeriesXLSX(path string, rows []domain.SeriesRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", seriesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(domain.SeriesColumns))
	for i, c := range domain.SeriesColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(seriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(seriesSheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Date.Format(domain.DateLayout),
			r.Amount.String(),
			r.HolidayFlag,
			r.WeekendFlag,
			r.FestivalFlag,
			r.FestivalName,
		}
		if err := f.SetSheetRow(seriesSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func seriesRecord(r domain.SeriesRow) []string {
	return []string{
		r.Date.Format(domain.DateLayout),
		r.Amount.String(),
		strconv.Itoa(r.HolidayFlag),
		strconv.Itoa(r.WeekendFlag),
		strconv.Itoa(r.FestivalFlag),
		r.FestivalName,
	}
}

func encodeTableCSV(out io.Writer, table *domain.Table) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
