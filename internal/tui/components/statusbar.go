package components

import (
	"fmt"
	"strings"

	"partifin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, seed int64, startYear, endYear int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]aide  [r]égénérer  [q]uitter"
	right := fmt.Sprintf("%d-%d · graine %d ", startYear, endYear, seed)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
