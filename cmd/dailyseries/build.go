package main

import (
	"fmt"
	"log/slog"
	"os"

	"daily-series/internal/gateway"
	"daily-series/internal/usecase"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the daily series from an invoice file",
		Long: `Reads Date/Amount invoice records, sums them per day, fills every missing
calendar day with a zero amount and writes the flagged series.`,
		RunE: runBuild,
	}

	cmd.Flags().String("input", "", "invoice CSV or XLSX file with Date and Amount columns")
	cmd.Flags().String("festivals", "", "festival calendar with Date and Festival_Name columns")
	cmd.Flags().String("output", "", "output file path")
	cmd.Flags().String("format", "", "output format (csv, xlsx, json)")
	cmd.Flags().Int("min-records", 0, "warn when fewer days than this were observed")

	_ = viper.BindPFlag("invoice_path", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("festival_path", cmd.Flags().Lookup("festivals"))
	_ = viper.BindPFlag("output_path", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output_format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("min_records", cmd.Flags().Lookup("min-records"))

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(cfg.InvoicePath); err != nil {
		return fmt.Errorf("invoice data file not found: %s", cfg.InvoicePath)
	}

	repo := gateway.NewFileTableRepository()
	resolver := gateway.NewFileResolver(cfg.FestivalCandidates)
	uc := usecase.NewSeriesUseCase(repo, resolver, slog.Default())

	result, err := uc.Build(cmd.Context(), usecase.Input{
		Path:         cfg.InvoicePath,
		FestivalPath: cfg.FestivalPath,
		MinRecords:   cfg.MinRecords,
	})
	if err != nil {
		return fmt.Errorf("series build failed: %w", err)
	}

	writer := gateway.NewSeriesWriter()
	if err := writer.Write(cfg.OutputPath, gateway.Format(cfg.OutputFormat), result.Series); err != nil {
		return fmt.Errorf("failed to write series: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(result.Report, cfg.OutputPath))
	return nil
}
