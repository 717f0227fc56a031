package tui

import (
	"fmt"
	"strings"

	"partifin/internal/cli"
	"partifin/internal/tui/components"
	"partifin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderChronologieTab(cw, contentH int) string {
	t := theme.Active
	inds := a.indicators
	if len(inds) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	// Rows visible inside the card, minus header and hint lines
	visible := contentH - 7
	if visible < 5 {
		visible = 5
	}
	offset := 0
	if a.chronoCursor >= visible {
		offset = a.chronoCursor - visible + 1
	}
	if offset > len(inds)-visible {
		offset = len(inds) - visible
	}
	if offset < 0 {
		offset = 0
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-7s %12s %12s %12s %10s %10s %10s",
		"Année", "Adhérents", "Revenus", "Dépenses", "Exécution", "Solde", "Dette")))
	b.WriteString("\n")

	end := offset + visible
	if end > len(inds) {
		end = len(inds)
	}
	for i := offset; i < end; i++ {
		ind := inds[i]
		line := fmt.Sprintf("%-7d %12s %12s %12s %10s %10s %10s",
			ind.Year,
			cli.FormatCount(ind.Members),
			cli.FormatMillions(ind.TotalRevenue),
			cli.FormatMillions(ind.TotalExpense),
			cli.FormatPercent(ind.ExecutionRate),
			cli.FormatSignedPercent(ind.BalancePercent()),
			cli.FormatMillions(ind.Debt),
		)
		if i == a.chronoCursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if label := a.eventLabel(inds[a.chronoCursor].Year); label != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d : %s", inds[a.chronoCursor].Year, label)))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("[j/k] naviguer"))

	return components.ContentCard(
		fmt.Sprintf("Chronologie %d-%d", a.stats.StartYear, a.stats.EndYear),
		b.String(), cw)
}

// eventLabel returns the configured event label for a year, or "".
func (a App) eventLabel(year int) string {
	for _, ev := range a.cfg.Party.Events {
		if ev.Year == year {
			return ev.Label
		}
	}
	return ""
}
