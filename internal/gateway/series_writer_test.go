package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"daily-series/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() []domain.SeriesRow {
	return []domain.SeriesRow{
		{
			Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.RequireFromString("150.5"),
			FestivalFlag: 1,
			FestivalName: "New Year,Spring Fest",
		},
		{
			Date:        time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.Zero,
			HolidayFlag: 1,
			WeekendFlag: 1,
		},
	}
}

func TestEncodeSeriesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSeriesCSV(&buf, sampleSeries()))

	want := "Date,Amount,Holiday_flag,Weekend_flag,Festival_flag,Festival_Name\n" +
		"2024-01-01,150.5,0,0,1,\"New Year,Spring Fest\"\n" +
		"2024-01-06,0,1,1,0,\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeSeriesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSeriesJSON(&buf, sampleSeries()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "2024-01-01", got[0]["Date"])
	assert.Equal(t, 150.5, got[0]["Amount"])
	assert.Equal(t, "New Year,Spring Fest", got[0]["Festival_Name"])
	assert.Equal(t, float64(1), got[1]["Holiday_flag"])
	assert.Equal(t, float64(1), got[1]["Weekend_flag"])
}

func TestSeriesWriter_Write(t *testing.T) {
	writer := NewSeriesWriter()
	repo := NewFileTableRepository()

	for _, format := range []Format{FormatCSV, FormatXLSX} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "series."+string(format))
			require.NoError(t, writer.Write(path, format, sampleSeries()))

			table, err := repo.ReadTable(context.Background(), path)
			require.NoError(t, err)

			assert.Equal(t, domain.SeriesColumns, table.Columns)
			require.Len(t, table.Rows, 2)
			assert.Equal(t, "2024-01-01", table.Cell(0, 0))
			assert.Equal(t, "150.5", table.Cell(0, 1))
			assert.Equal(t, "New Year,Spring Fest", table.Cell(0, 5))
			assert.Equal(t, "1", table.Cell(1, 2))
		})
	}

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "series.json")
		require.NoError(t, writer.Write(path, FormatJSON, sampleSeries()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"Festival_Name": "New Year,Spring Fest"`)
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := writer.Write(filepath.Join(t.TempDir(), "series.parquet"), Format("parquet"), sampleSeries())
		assert.Error(t, err)
	})
}

func TestSeriesWriter_Write_XLSXKeepsDecimalAmounts(t *testing.T) {
	rows := sampleSeries()
	rows[0].Amount = decimal.RequireFromString("12345678901234567.89")
	rows[1].Amount = decimal.RequireFromString("0.10")

	path := filepath.Join(t.TempDir(), "series.xlsx")
	require.NoError(t, NewSeriesWriter().Write(path, FormatXLSX, rows))

	table, err := NewFileTableRepository().ReadTable(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "12345678901234567.89", table.Cell(0, 1))
	assert.Equal(t, "0.1", table.Cell(1, 1))
}

func TestSeriesWriter_WriteTable(t *testing.T) {
	table := domain.NewTable(
		[]string{"Date", "Branch", "Amount"},
		[][]string{{"2024-01-01", "North", "150"}},
	)

	var buf bytes.Buffer
	require.NoError(t, NewSeriesWriter().WriteTable("", &buf, table))
	assert.Equal(t, "Date,Branch,Amount\n2024-01-01,North,150\n", buf.String())

	path := filepath.Join(t.TempDir(), "rollup.csv")
	require.NoError(t, NewSeriesWriter().WriteTable(path, nil, table))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
}
