package cli

import (
	"strings"
	"testing"
)

func TestRenderTable_Structure(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Indicateur",
		Headers: []string{"Nom", "Valeur"},
		Rows: [][]string{
			{"Revenus", "48.23 M€"},
			{"---"},
			{"Dépenses", "46.91 M€"},
		},
	})

	if !strings.Contains(out, "Indicateur") {
		t.Error("table missing title")
	}
	for _, cell := range []string{"Nom", "Valeur", "Revenus", "48.23 M€", "Dépenses"} {
		if !strings.Contains(out, cell) {
			t.Errorf("table missing %q", cell)
		}
	}
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╯") {
		t.Error("table missing rounded border corners")
	}
	// Header rule plus the explicit "---" separator
	if got := strings.Count(out, "├"); got != 2 {
		t.Errorf("separator count = %d, want 2", got)
	}
	if strings.Contains(out, "---") {
		t.Error("separator marker leaked into output")
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("empty table rendered %q, want empty string", out)
	}
}

func TestRenderSparkline(t *testing.T) {
	out := RenderSparkline([]float64{0, 50, 100})
	runes := []rune(out)
	if len(runes) != 3 {
		t.Fatalf("len = %d, want 3", len(runes))
	}
	if runes[0] != '▁' {
		t.Errorf("min block = %q, want ▁", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("max block = %q, want █", runes[2])
	}
}

func TestRenderSparkline_Empty(t *testing.T) {
	if out := RenderSparkline(nil); out != "" {
		t.Errorf("got %q, want empty string", out)
	}
}

func TestRenderHorizontalBar_Clamped(t *testing.T) {
	full := RenderHorizontalBar(200, 100, 10)
	if got := strings.Count(full, "█"); got != 10 {
		t.Errorf("over-max bar length = %d, want 10", got)
	}

	empty := RenderHorizontalBar(-5, 100, 10)
	if got := strings.Count(empty, "█"); got != 0 {
		t.Errorf("negative bar length = %d, want 0", got)
	}
}
