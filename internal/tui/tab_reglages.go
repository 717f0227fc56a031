package tui

import (
	"fmt"
	"strconv"
	"strings"

	"partifin/internal/cli"
	"partifin/internal/config"
	"partifin/internal/tui/components"
	"partifin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldSeed
	settingsFieldStartYear
	settingsFieldEndYear
	settingsFieldBaseBudget
	settingsFieldBaseMembers
	settingsFieldCount // sentinel
)

// settingsState tracks the Réglages tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "enregistré" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	sim := a.cfg.Simulation

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldSeed:
		ti.Placeholder = "0 = graine basée sur l'horloge"
		ti.SetValue(strconv.FormatInt(sim.Seed, 10))
	case settingsFieldStartYear:
		ti.Placeholder = "2002"
		ti.SetValue(strconv.Itoa(sim.StartYear))
	case settingsFieldEndYear:
		ti.Placeholder = "2025"
		ti.SetValue(strconv.Itoa(sim.EndYear))
	case settingsFieldBaseBudget:
		ti.Placeholder = "25.0 (M€)"
		ti.SetValue(strconv.FormatFloat(sim.BaseBudget, 'f', -1, 64))
	case settingsFieldBaseMembers:
		ti.Placeholder = "200000"
		ti.SetValue(strconv.FormatFloat(sim.BaseMembers, 'f', 0, 64))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		changed := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		if changed && a.settings.saveErr == nil {
			a.loaded = false
			return a, tea.Batch(a.spinner.Tick, generateCmd(a.cfg, a.cfg.Simulation.Seed))
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field and persists the config.
// Returns true when a simulation parameter changed and a regeneration is due.
func (a *App) settingsSave() bool {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())
	regen := false

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldSeed:
		if s, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Simulation.Seed = s
			regen = true
		}
	case settingsFieldStartYear:
		if y, err := strconv.Atoi(val); err == nil {
			cfg.Simulation.StartYear = y
			regen = true
		}
	case settingsFieldEndYear:
		if y, err := strconv.Atoi(val); err == nil {
			cfg.Simulation.EndYear = y
			regen = true
		}
	case settingsFieldBaseBudget:
		if b, err := strconv.ParseFloat(val, 64); err == nil && b > 0 {
			cfg.Simulation.BaseBudget = b
			regen = true
		}
	case settingsFieldBaseMembers:
		if m, err := strconv.ParseFloat(val, 64); err == nil && m > 0 {
			cfg.Simulation.BaseMembers = m
			regen = true
		}
	}

	if err := cfg.Simulation.Validate(); err != nil {
		a.settings.saveErr = err
		return false
	}

	a.cfg = cfg
	a.settings.saveErr = config.Save(cfg)
	return regen
}

func (a App) renderReglagesTab(cw int) string {
	t := theme.Active
	sim := a.cfg.Simulation

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Thème", a.cfg.Appearance.Theme},
		{"Graine", strconv.FormatInt(sim.Seed, 10)},
		{"Première année", strconv.Itoa(sim.StartYear)},
		{"Dernière année", strconv.Itoa(sim.EndYear)},
		{"Budget initial", cli.FormatMillions(sim.BaseBudget)},
		{"Adhérents initiaux", cli.FormatCount(sim.BaseMembers)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+" :"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			padLen := components.CardInnerWidth(cw) - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+" :")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Échec de l'enregistrement : %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Enregistré !"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] naviguer  [Entrée] modifier  [Échap] annuler"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Parti :          ") + valueStyle.Render(a.cfg.Party.Name) + "\n")
	infoBody.WriteString(labelStyle.Render("Années générées : ") + valueStyle.Render(strconv.Itoa(len(a.records))) + "\n")
	infoBody.WriteString(labelStyle.Render("Fichier config : ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Réglages", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Général", infoBody.String(), cw))

	return b.String()
}
