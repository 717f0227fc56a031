package config

import (
	"errors"
	"math"
	"testing"
)

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{"normal range", 2002, 2025, false},
		{"single year", 2010, 2010, false},
		{"inverted", 2025, 2002, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := SimulationConfig{StartYear: tt.start, EndYear: tt.end}
			err := sim.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate accepted an invalid range")
				}
				if !errors.Is(err, ErrInvalidYearRange) {
					t.Errorf("error = %v, want ErrInvalidYearRange", err)
				}
			} else if err != nil {
				t.Errorf("Validate returned %v, want nil", err)
			}
		})
	}
}

func TestDefaultConfig_SimulationParameters(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Simulation.StartYear != 2002 || cfg.Simulation.EndYear != 2025 {
		t.Errorf("range = %d-%d, want 2002-2025",
			cfg.Simulation.StartYear, cfg.Simulation.EndYear)
	}
	if cfg.Simulation.BaseBudget <= 0 {
		t.Errorf("BaseBudget = %f, want > 0", cfg.Simulation.BaseBudget)
	}
	if cfg.Simulation.BaseMembers <= 0 {
		t.Errorf("BaseMembers = %f, want > 0", cfg.Simulation.BaseMembers)
	}
	if err := cfg.Simulation.Validate(); err != nil {
		t.Errorf("default simulation invalid: %v", err)
	}
}

func TestDefaultConfig_FundingWeightsSumToOne(t *testing.T) {
	cfg := DefaultConfig()

	var sum float64
	for _, s := range cfg.Party.FundingSources {
		if s.Weight <= 0 {
			t.Errorf("source %s: Weight = %f, want > 0", s.Name, s.Weight)
		}
		sum += s.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum = %f, want 1.0", sum)
	}
}

func TestDefaultConfig_EventsWithinRange(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Party.Events) == 0 {
		t.Fatal("no default events")
	}
	for _, ev := range cfg.Party.Events {
		if ev.Year < cfg.Simulation.StartYear || ev.Year > cfg.Simulation.EndYear {
			t.Errorf("event %q year %d outside %d-%d",
				ev.Label, ev.Year, cfg.Simulation.StartYear, cfg.Simulation.EndYear)
		}
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("config exists before save")
	}

	cfg := DefaultConfig()
	cfg.Simulation.Seed = 99
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}

	if !Exists() {
		t.Fatal("config missing after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Simulation.Seed != 99 {
		t.Errorf("Seed = %d, want 99", loaded.Simulation.Seed)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", loaded.Appearance.Theme)
	}
	if loaded.Party.ShortName != cfg.Party.ShortName {
		t.Errorf("ShortName = %q, want %q", loaded.Party.ShortName, cfg.Party.ShortName)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.StartYear != 2002 {
		t.Errorf("StartYear = %d, want default 2002", cfg.Simulation.StartYear)
	}
}
