package main

import (
	"fmt"
	"log/slog"
	"strings"

	"daily-series/internal/domain"
	"daily-series/internal/gateway"
	"daily-series/internal/usecase"

	"github.com/spf13/cobra"
)

func rollupCmd() *cobra.Command {
	var (
		input        string
		groupBy      []string
		amountColumn string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Sum amounts per date and branch/zone columns",
		Example: `  dailyseries rollup --input branches.csv --group-by Date,Branch
  dailyseries rollup --input zones.xlsx --group-by Date --output daily.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}

			uc := usecase.NewSeriesUseCase(gateway.NewFileTableRepository(), gateway.NewFileResolver(nil), slog.Default())
			table, err := uc.RollupFile(cmd.Context(), input, trimAll(groupBy), amountColumn)
			if err != nil {
				return fmt.Errorf("rollup failed: %w", err)
			}

			return gateway.NewSeriesWriter().WriteTable(output, cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "CSV or XLSX table to aggregate")
	cmd.Flags().StringSliceVar(&groupBy, "group-by", []string{domain.ColumnDate}, "grouping columns")
	cmd.Flags().StringVar(&amountColumn, "amount-column", domain.ColumnAmount, "column to sum")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default: stdout)")

	return cmd
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
