// Package config holds the explicit run configuration passed to the pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables read by Load, e.g. DAILYSERIES_INVOICE_PATH.
const EnvPrefix = "DAILYSERIES"

// DefaultOutputPath is used when no output path is configured. Its extension
// follows the configured output format.
var DefaultOutputPath = filepath.Join("output", "daily_series.csv")

var formatExtensions = map[string]string{
	".csv":  "csv",
	".xlsx": "xlsx",
	".json": "json",
}

// Config represents the complete pipeline configuration.
type Config struct {
	InvoicePath        string        `mapstructure:"invoice_path" validate:"required"`
	FestivalPath       string        `mapstructure:"festival_path"`
	FestivalCandidates []string      `mapstructure:"festival_candidates"`
	OutputPath         string        `mapstructure:"output_path" validate:"required"`
	OutputFormat       string        `mapstructure:"output_format" validate:"oneof=csv xlsx json"`
	MinRecords         int           `mapstructure:"min_records" validate:"gte=0"`
	Logging            LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("invoice_path", filepath.Join("data", "invoices.csv"))
	v.SetDefault("festival_path", "")
	v.SetDefault("festival_candidates", []string{"Festivals.csv", "../Festivals.csv", "data/Festivals.csv"})
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("output_format", "csv")
	v.SetDefault("min_records", 1200)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration from v: defaults, then the config file, then
// environment variables, then any flags already bound to v. A missing config
// file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("dailyseries")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dailyseries"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.OutputPath == DefaultOutputPath && cfg.OutputFormat != "" {
		cfg.OutputPath = strings.TrimSuffix(DefaultOutputPath, filepath.Ext(DefaultOutputPath)) + "." + cfg.OutputFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. An output path ending in a known
// extension must match the output format.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(c.OutputPath))
	if format, ok := formatExtensions[ext]; ok && format != c.OutputFormat {
		return fmt.Errorf("config validation failed: output path %s does not match output format %s", c.OutputPath, c.OutputFormat)
	}
	return nil
}
