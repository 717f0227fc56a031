package tui

import (
	"fmt"
	"strconv"
	"strings"

	"partifin/internal/config"
	"partifin/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers before they are applied.
type setupValues struct {
	startYear string
	endYear   string
	seed      string
	theme     string
}

// newSetupForm builds the first-run configuration form.
func newSetupForm(cfg config.Config, v *setupValues) *huh.Form {
	v.startYear = strconv.Itoa(cfg.Simulation.StartYear)
	v.endYear = strconv.Itoa(cfg.Simulation.EndYear)
	v.seed = strconv.FormatInt(cfg.Simulation.Seed, 10)
	v.theme = cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Bienvenue dans partifin").
				Description(fmt.Sprintf("Synthèse financière de l'%s.\nQuelques réglages avant de commencer.", cfg.Party.ShortName)),

			huh.NewInput().
				Title("Première année").
				Value(&v.startYear).
				Validate(validateYear),

			huh.NewInput().
				Title("Dernière année").
				Value(&v.endYear).
				Validate(validateYear),

			huh.NewInput().
				Title("Graine aléatoire").
				Description("0 pour une graine basée sur l'horloge").
				Value(&v.seed).
				Validate(func(s string) error {
					if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
						return fmt.Errorf("entier attendu")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Thème de couleurs").
				Options(themeOpts...).
				Value(&v.theme),
		),
	)
}

func validateYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("année attendue")
	}
	if y < 1900 || y > 2100 {
		return fmt.Errorf("année entre 1900 et 2100")
	}
	return nil
}

// applySetup copies the completed form values into the config and saves it.
// Invalid ranges keep the previous configuration.
func (a *App) applySetup() {
	cfg := a.cfg

	if y, err := strconv.Atoi(strings.TrimSpace(a.setupVals.startYear)); err == nil {
		cfg.Simulation.StartYear = y
	}
	if y, err := strconv.Atoi(strings.TrimSpace(a.setupVals.endYear)); err == nil {
		cfg.Simulation.EndYear = y
	}
	if s, err := strconv.ParseInt(strings.TrimSpace(a.setupVals.seed), 10, 64); err == nil {
		cfg.Simulation.Seed = s
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return
	}

	cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(cfg.Appearance.Theme)

	a.cfg = cfg
	a.seed = cfg.Simulation.Seed
	_ = config.Save(cfg)
}
