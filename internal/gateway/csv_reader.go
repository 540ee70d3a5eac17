package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"daily-series/internal/domain"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// numFmtLiterals matches the parts of a number format code that are not
// format tokens: colour/locale brackets, quoted text and escaped characters.
var numFmtLiterals = regexp.MustCompile(`\[[^\]]*\]|"[^"]*"|\\.`)

// FileTableRepository implements the TableRepository interface for CSV and XLSX files.
type FileTableRepository struct{}

// NewFileTableRepository creates a new repository instance.
func NewFileTableRepository() *FileTableRepository {
	return &FileTableRepository{}
}

// ReadTable reads a whole table from path. Files ending in .xlsx are read from
// their first sheet; anything else is parsed as CSV.
func (r *FileTableRepository) ReadTable(ctx context.Context, path string) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return r.readXLSX(path)
	}
	return r.readCSV(path)
}

func (r *FileTableRepository) readCSV(path string) (*domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read header from %s: file is empty", path)
		}
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	table := domain.NewTable(cleanHeader(header), nil)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

func (r *FileTableRepository) readXLSX(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to read header from %s: sheet %q is empty", path, sheets[0])
	}

	dates := newDateCells(f, sheets[0])
	table := domain.NewTable(cleanHeader(rows[0]), nil)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		for col, cell := range row {
			if v, ok := dates.format(col+1, i+2, cell); ok {
				row[col] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// dateCells rewrites serial numbers stored in date-formatted cells as
// calendar dates. Rows are read raw, so without it a date cell comes back as
// its serial ("45292") rather than anything a date parser understands.
type dateCells struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	d := &dateCells{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *dateCells) format(col, row int, raw string) (string, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", false
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", false
	}
	styleID, err := d.f.GetCellStyle(d.sheet, name)
	if err != nil || !d.isDateStyle(styleID) {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return "", false
	}
	return t.Format(domain.DateLayout), true
}

func (d *dateCells) isDateStyle(styleID int) bool {
	if styleID == 0 {
		return false
	}
	if known, ok := d.styles[styleID]; ok {
		return known
	}
	style, err := d.f.GetStyle(styleID)
	isDate := err == nil && isDateNumFmt(style)
	d.styles[styleID] = isDate
	return isDate
}

// isDateNumFmt reports whether a style renders its value as a date, either
// through a built-in date/time format or a custom code with day or year parts.
func isDateNumFmt(style *excelize.Style) bool {
	if style.CustomNumFmt != nil {
		code := numFmtLiterals.ReplaceAllString(*style.CustomNumFmt, "")
		return strings.ContainsAny(strings.ToLower(code), "dy")
	}
	switch n := style.NumFmt; {
	case n >= 14 && n <= 17, n == 22, n >= 27 && n <= 36, n >= 50 && n <= 58:
		return true
	}
	return false
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
