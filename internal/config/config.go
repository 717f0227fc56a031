// Package config handles partifin configuration: party profile, simulation
// parameters, and output settings, stored as TOML in the XDG config dir.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalidYearRange is returned when the configured simulation range is
// empty or reversed.
var ErrInvalidYearRange = errors.New("invalid year range")

// Config holds all partifin configuration.
type Config struct {
	Party      PartyConfig      `toml:"party"`
	Simulation SimulationConfig `toml:"simulation"`
	Output     OutputConfig     `toml:"output"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// PartyConfig describes the simulated organization. All fields are static
// metadata merged into the rendered report, never derived from the data.
type PartyConfig struct {
	Name            string          `toml:"name"`
	ShortName       string          `toml:"short_name"`
	Orientation     string          `toml:"orientation"`
	Electorate      []string        `toml:"electorate"`
	FundingSources  []FundingSource `toml:"funding_sources"`
	Events          []PartyEvent    `toml:"events"`
	Recommendations []string        `toml:"recommendations"`
}

// FundingSource is one named revenue category with its proportional weight.
// Weights across all sources must sum to 1.
type FundingSource struct {
	Name   string  `toml:"name"`
	Weight float64 `toml:"weight"`
}

// PartyEvent is a dated milestone shown in the report timeline.
type PartyEvent struct {
	Year  int    `toml:"year"`
	Label string `toml:"label"`
}

// SimulationConfig holds the generator parameters.
type SimulationConfig struct {
	StartYear   int     `toml:"start_year"`
	EndYear     int     `toml:"end_year"`
	BaseBudget  float64 `toml:"base_budget"`  // M€
	BaseMembers float64 `toml:"base_members"` // headcount
	BaseDebt    float64 `toml:"base_debt"`    // M€ at start of first year
	Seed        int64   `toml:"seed"`         // 0 means time-based
}

// OutputConfig holds artifact paths.
type OutputConfig struct {
	CSVPath   string `toml:"csv_path"`
	ChartPath string `toml:"chart_path"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration: the UMP / Les
// Républicains profile over 2002-2025.
func DefaultConfig() Config {
	return Config{
		Party: PartyConfig{
			Name:        "Union pour un Mouvement Populaire (UMP)",
			ShortName:   "UMP",
			Orientation: "droite",
			Electorate:  []string{"cadres", "entrepreneurs", "retraites", "rural"},
			FundingSources: []FundingSource{
				{Name: "cotisations", Weight: 0.25},
				{Name: "dons", Weight: 0.35},
				{Name: "financement_public", Weight: 0.30},
				{Name: "evenements", Weight: 0.05},
				{Name: "formations", Weight: 0.03},
				{Name: "emprunts", Weight: 0.02},
			},
			Events: []PartyEvent{
				{Year: 2002, Label: "Création de l'UMP et réélection de Jacques Chirac"},
				{Year: 2007, Label: "Élection de Nicolas Sarkozy"},
				{Year: 2012, Label: "Défaite présidentielle face à François Hollande"},
				{Year: 2014, Label: "Affaire Bygmalion"},
				{Year: 2015, Label: "Changement de nom - Les Républicains"},
				{Year: 2016, Label: "Primaire de la droite et du centre"},
				{Year: 2017, Label: "Défaite présidentielle et effondrement parlementaire"},
				{Year: 2020, Label: "Crise COVID-19 et adaptation numérique"},
				{Year: 2022, Label: "Élection présidentielle et législatives"},
			},
			Recommendations: []string{
				"Diversifier les sources de financement",
				"Renforcer la collecte des cotisations",
				"Développer le fundraising numérique",
				"Optimiser la structure des dépenses",
				"Investir dans la formation des cadres",
				"Renforcer la présence territoriale",
				"Améliorer la transparence financière",
				"Développer les partenariats avec la société civile",
			},
		},
		Simulation: SimulationConfig{
			StartYear:   2002,
			EndYear:     2025,
			BaseBudget:  25,
			BaseMembers: 200000,
			BaseDebt:    12.5,
			Seed:        42,
		},
		Output: OutputConfig{
			CSVPath:   "UMP_financial_data_2002_2025.csv",
			ChartPath: "UMP_financial_analysis.png",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Validate checks the simulation parameters. A reversed or empty range is
// the only fatal configuration error.
func (s SimulationConfig) Validate() error {
	if s.StartYear > s.EndYear {
		return fmt.Errorf("%w: start %d after end %d", ErrInvalidYearRange, s.StartYear, s.EndYear)
	}
	return nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "partifin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "partifin")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
