package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "invoices.csv"), cfg.InvoicePath)
	assert.Equal(t, []string{"Festivals.csv", "../Festivals.csv", "data/Festivals.csv"}, cfg.FestivalCandidates)
	assert.Equal(t, "csv", cfg.OutputFormat)
	assert.Equal(t, 1200, cfg.MinRecords)
	assert.Equal(t, LoggingConfig{Level: "info", Format: "console"}, cfg.Logging)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
}

func TestLoad_DefaultOutputFollowsFormat(t *testing.T) {
	for _, format := range []string{"csv", "xlsx", "json"} {
		t.Run(format, func(t *testing.T) {
			chdir(t, t.TempDir())
			v := viper.New()
			v.Set("output_format", format)

			cfg, err := Load(v, "")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("output", "daily_series."+format), cfg.OutputPath)
		})
	}

	t.Run("explicit path is kept", func(t *testing.T) {
		chdir(t, t.TempDir())
		v := viper.New()
		v.Set("output_format", "json")
		v.Set("output_path", "report.txt")

		cfg, err := Load(v, "")
		require.NoError(t, err)
		assert.Equal(t, "report.txt", cfg.OutputPath)
	})
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dailyseries.yaml")
	content := `invoice_path: in/invoices.xlsx
festival_path: cal/Festivals.csv
output_format: xlsx
min_records: 30
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DAILYSERIES_OUTPUT_PATH", "out/series.xlsx")
	t.Setenv("DAILYSERIES_LOGGING_FORMAT", "json")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "in/invoices.xlsx", cfg.InvoicePath)
	assert.Equal(t, "cal/Festivals.csv", cfg.FestivalPath)
	assert.Equal(t, "out/series.xlsx", cfg.OutputPath)
	assert.Equal(t, "xlsx", cfg.OutputFormat)
	assert.Equal(t, 30, cfg.MinRecords)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit config file missing", func(t *testing.T) {
		_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid output format", func(t *testing.T) {
		chdir(t, t.TempDir())
		v := viper.New()
		v.Set("output_format", "parquet")

		_, err := Load(v, "")
		assert.ErrorContains(t, err, "config validation failed")
	})

	t.Run("output extension contradicts format", func(t *testing.T) {
		chdir(t, t.TempDir())
		v := viper.New()
		v.Set("output_format", "json")
		v.Set("output_path", "series.csv")

		_, err := Load(v, "")
		assert.ErrorContains(t, err, "does not match output format json")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		InvoicePath:  "invoices.csv",
		OutputPath:   "series.json",
		OutputFormat: "json",
		Logging:      LoggingConfig{Level: "warn", Format: "json"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing invoice path", func(c *Config) { c.InvoicePath = "" }},
		{"missing output path", func(c *Config) { c.OutputPath = "" }},
		{"negative min records", func(c *Config) { c.MinRecords = -1 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"csv path with json format", func(c *Config) { c.OutputPath = "series.csv" }},
		{"xlsx path with json format", func(c *Config) { c.OutputPath = "out/Series.XLSX" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
