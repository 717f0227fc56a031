package tui

import (
	"fmt"
	"strings"

	"partifin/internal/cli"
	"partifin/internal/tui/components"
	"partifin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStructureTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	innerW := components.CardInnerWidth(cw)

	// Funding shares as horizontal gauges
	labelW := 0
	for _, share := range a.stats.FundingShares {
		if w := len([]rune(share.Source)); w > labelW {
			labelW = w
		}
	}
	barW := innerW - labelW - 20
	if barW < 10 {
		barW = 10
	}

	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	var sharesBody strings.Builder
	for _, share := range a.stats.FundingShares {
		label := fmt.Sprintf("%-*s", labelW, share.Source)
		sharesBody.WriteString(components.HorizontalBar(label, share.Percent/100, barW, t.Accent))
		sharesBody.WriteString(amountStyle.Render(fmt.Sprintf(" %5.1f%%  %s", share.Percent, cli.FormatMillions(share.Amount))))
		sharesBody.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Répartition des financements", sharesBody.String(), cw))
	b.WriteString("\n")

	// Key events timeline
	yearStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface).Bold(true)
	evStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	var evBody strings.Builder
	for _, ev := range a.cfg.Party.Events {
		evBody.WriteString(yearStyle.Render(fmt.Sprintf("%d", ev.Year)))
		evBody.WriteString(evStyle.Render("  " + ev.Label))
		evBody.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Événements marquants", evBody.String(), cw))

	return b.String()
}
