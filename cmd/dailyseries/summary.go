package main

import (
	"fmt"
	"strings"

	"daily-series/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(20)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func renderReport(r domain.Report, output string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Daily series built") + "\n")

	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s %v\n", labelStyle.Render(label), value)
	}
	line("Range", r.StartDate+" .. "+r.EndDate)
	line("Days", r.TotalDays)
	line("Observed days", r.ObservedDays)
	line("Valid rows", fmt.Sprintf("%d of %d", r.ValidRows, r.InputRows))
	line("Total amount", r.TotalAmount.String())
	line("Holidays", r.Holidays)
	line("Weekends", r.Weekends)
	line("Festivals", r.Festivals)
	line("Output", output)

	if n := r.Dropped.Total(); n > 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Dropped %d rows (bad date %d, bad amount %d, negative %d)",
			n, r.Dropped.BadDate, r.Dropped.BadAmount, r.Dropped.NegativeAmount)) + "\n")
	}
	if r.Degraded {
		b.WriteString(warningStyle.Render("No festivals file found, festival fields left empty") + "\n")
	} else if r.MalformedFestivalRows > 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Skipped %d malformed festival rows in %s", r.MalformedFestivalRows, r.FestivalSource)) + "\n")
	}
	if r.BelowMinRecords {
		b.WriteString(warningStyle.Render("Fewer observed days than the configured minimum") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
