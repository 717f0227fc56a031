package components

import (
	"strings"
	"testing"

	"partifin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestSplitRow_SumsToTotal(t *testing.T) {
	tests := []struct {
		total int
		n     int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
	}

	for _, tt := range tests {
		widths := SplitRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("SplitRow(%d, %d): len = %d, want %d", tt.total, tt.n, len(widths), tt.n)
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("SplitRow(%d, %d): sum = %d, want %d", tt.total, tt.n, sum, tt.total)
		}
	}
}

func TestSplitRow_InvalidCount(t *testing.T) {
	if got := SplitRow(100, 0); got != nil {
		t.Errorf("SplitRow(100, 0) = %v, want nil", got)
	}
}

func TestCardRow_MatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Court", "Contenu", 22)
	tallCard := ContentCard("Long", "L1\nL2\nL3\nL4\nL5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup: short card should be shorter than tall card")
	}

	joined := CardRow(tallCard, shortCard)
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want tallest card height %d", len(lines), tallLines)
	}
}

func TestMetricRow_ContainsContent(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricRow([]Metric{
		{Label: "Adhérents", Value: "178 235", Delta: "-21.7% sur la période"},
		{Label: "Revenus", Value: "48.23 M€", Delta: "+4.2% sur la période"},
	}, 60)
	for _, s := range []string{"Adhérents", "178 235", "-21.7%", "Revenus", "48.23 M€"} {
		if !strings.Contains(row, s) {
			t.Errorf("row missing %q", s)
		}
	}
}

func TestDeltaForeground_SignDriven(t *testing.T) {
	theme.SetActive("flexoki-dark")

	tests := []struct {
		delta string
		want  lipgloss.Color
	}{
		{"+4.2% sur la période", theme.Active.Green},
		{"-21.7% sur la période", theme.Active.Red},
		{"par an en moyenne", theme.Active.TextDim},
		{"", theme.Active.TextDim},
	}

	for _, tt := range tests {
		if got := deltaForeground(tt.delta); got != tt.want {
			t.Errorf("deltaForeground(%q) = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

func TestSparkline_Length(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := Sparkline([]float64{1, 2, 3, 4}, theme.Active.Accent)
	if out == "" {
		t.Fatal("empty sparkline")
	}

	count := 0
	for _, r := range out {
		if r >= '▁' && r <= '█' {
			count++
		}
	}
	if count != 4 {
		t.Errorf("block count = %d, want 4", count)
	}
}

func TestBarChart_FallsBackWhenTiny(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := BarChart([]float64{1, 2, 3}, []string{"a", "b", "c"}, theme.Active.Blue, 10, 2)
	if strings.Contains(out, "└") {
		t.Error("tiny chart rendered axes instead of sparkline fallback")
	}
}

func TestBarChart_HasAxis(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := BarChart([]float64{10, 20, 30}, []string{"02", "03", "04"}, theme.Active.Blue, 40, 8)
	if !strings.Contains(out, "└") || !strings.Contains(out, "│") {
		t.Error("chart missing axis characters")
	}
}
