package tui

import (
	"fmt"
	"strconv"
	"strings"

	"partifin/internal/cli"
	"partifin/internal/tui/components"
	"partifin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSyntheseTab(cw int) string {
	t := theme.Active
	stats := a.stats
	var b strings.Builder

	// Row 1: Metric cards
	metrics := []components.Metric{
		{Label: "Adhérents", Value: cli.FormatCount(stats.MeanMembers), Delta: cli.FormatSignedPercent(stats.MembersChangePercent) + " sur la période"},
		{Label: "Revenus", Value: cli.FormatMillions(stats.MeanRevenue), Delta: cli.FormatSignedPercent(stats.RevenueChangePercent) + " sur la période"},
		{Label: "Dépenses", Value: cli.FormatMillions(stats.MeanExpense), Delta: "par an en moyenne"},
		{Label: "Exécution", Value: cli.FormatPercent(stats.MeanExecutionRate), Delta: "du budget en moyenne"},
	}
	b.WriteString(components.MetricRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Annual revenue chart
	if len(a.records) > 0 {
		chartVals := make([]float64, len(a.records))
		chartLabels := make([]string, len(a.records))
		for i, r := range a.records {
			chartVals[i] = r.TotalRevenue
			chartLabels[i] = strconv.Itoa(r.Year % 100)
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Revenus annuels %d-%d (M€)", stats.StartYear, stats.EndYear),
			components.BarChart(chartVals, chartLabels, t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: balance sparkline + situation card side by side
	halves := components.SplitRow(cw, 2)

	balVals := make([]float64, len(a.records))
	for i, r := range a.records {
		// Shift so deficits still render on a positive scale
		balVals[i] = r.Balance() + 10
	}
	var balBody strings.Builder
	balBody.WriteString(components.Sparkline(balVals, t.Accent))
	balBody.WriteString("\n")
	balanceStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	if stats.MeanBalancePercent < 0 {
		balanceStyle = balanceStyle.Foreground(t.Red)
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	balBody.WriteString(labelStyle.Render("Solde moyen : "))
	balBody.WriteString(balanceStyle.Render(cli.FormatSignedPercent(stats.MeanBalancePercent) + " des revenus"))

	var debtBody strings.Builder
	debtVals := make([]float64, len(a.indicators))
	for i, ind := range a.indicators {
		debtVals[i] = ind.Debt
	}
	debtBody.WriteString(components.Sparkline(debtVals, t.Orange))
	debtBody.WriteString("\n")
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	debtBody.WriteString(labelStyle.Render("Dette finale : "))
	debtBody.WriteString(valueStyle.Render(cli.FormatMillions(stats.FinalDebt)))

	b.WriteString(components.CardRow(
		components.ContentCard("Solde annuel", balBody.String(), halves[0]),
		components.ContentCard("Endettement", debtBody.String(), halves[1]),
	))

	return b.String()
}
