package cmd

import "testing"

func TestThemeChoice(t *testing.T) {
	tests := []struct {
		choice  string
		current string
		want    string
	}{
		{"1\n", "tokyo-night", "flexoki-dark"},
		{"2\n", "flexoki-dark", "catppuccin-mocha"},
		{"3\n", "flexoki-dark", "tokyo-night"},
		{"4\n", "flexoki-dark", "terminal"},
		{"\n", "tokyo-night", "tokyo-night"},
		{"", "catppuccin-mocha", "catppuccin-mocha"},
		{"9\n", "terminal", "terminal"},
	}

	for _, tt := range tests {
		if got := themeChoice(tt.choice, tt.current); got != tt.want {
			t.Errorf("themeChoice(%q, %q) = %q, want %q", tt.choice, tt.current, got, tt.want)
		}
	}
}
