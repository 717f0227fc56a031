package cli

import "testing"

func TestFormatMillions(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{25.347, "25.35 M€"},
		{0, "0.00 M€"},
		{-3.2, "-3.20 M€"},
	}

	for _, tt := range tests {
		if got := FormatMillions(tt.in); got != tt.want {
			t.Errorf("FormatMillions(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{198235, "198 235"},
		{1234567, "1 234 567"},
		{-4500, "-4 500"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCount_Rounds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{198234.7, "198 235"},
		{198234.2, "198 234"},
		{-1500.6, "-1 501"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.8512); got != "85.1%" {
		t.Errorf("FormatPercent(0.8512) = %q, want 85.1%%", got)
	}
}

func TestFormatSignedPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4.25, "+4.2%"},
		{-13.4, "-13.4%"},
		{0, "+0.0%"},
	}

	for _, tt := range tests {
		if got := FormatSignedPercent(tt.in); got != tt.want {
			t.Errorf("FormatSignedPercent(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
