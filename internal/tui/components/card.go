// Package components provides the widgets the dashboard tabs assemble:
// metric cards, bordered content cards, charts, the tab bar and the
// status bar.
package components

import (
	"strings"

	"partifin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline figure on the Synthèse tab. Delta is a short
// qualifier printed under the value; a leading sign drives its color
// (green for growth, red for decline, dimmed otherwise).
type Metric struct {
	Label string
	Value string
	Delta string
}

// SplitRow divides totalWidth into n column widths summing exactly to
// totalWidth, the leftmost columns absorbing the remainder.
func SplitRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// frame is the border shared by every card. outerWidth includes the
// border characters.
func frame(outerWidth int) lipgloss.Style {
	w := outerWidth - 2
	if w < 10 {
		w = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(w).
		Padding(0, 1)
}

// MetricRow renders the metrics side by side, filling totalWidth.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	t := theme.Active
	widths := SplitRow(totalWidth, len(metrics))

	cards := make([]string, len(metrics))
	for i, m := range metrics {
		body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) +
			"\n" +
			lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value)
		if m.Delta != "" {
			body += "\n" + lipgloss.NewStyle().Foreground(deltaForeground(m.Delta)).Render(m.Delta)
		}
		cards[i] = frame(widths[i]).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// deltaForeground picks the delta color from its leading sign.
func deltaForeground(delta string) lipgloss.Color {
	t := theme.Active
	switch {
	case strings.HasPrefix(delta, "+"):
		return t.Green
	case strings.HasPrefix(delta, "-"):
		return t.Red
	default:
		return t.TextDim
	}
}

// ContentCard renders body in a bordered card under an optional bold
// title line. outerWidth includes the border characters.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		title = lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true).Render(title)
		content = title + "\n" + body
	}
	return frame(outerWidth).Render(content)
}

// CardRow joins pre-rendered cards horizontally, top-aligned.
func CardRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth is the text width available inside a ContentCard of
// the given outer width, border and padding removed.
func CardInnerWidth(outerWidth int) int {
	if outerWidth-4 < 10 {
		return 10
	}
	return outerWidth - 4
}
