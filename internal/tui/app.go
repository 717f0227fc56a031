// Package tui implements the interactive partifin dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"partifin/internal/config"
	"partifin/internal/model"
	"partifin/internal/pipeline"
	"partifin/internal/simulate"
	"partifin/internal/tui/components"
	"partifin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root bubbletea model.
type App struct {
	cfg config.Config

	// Generated history
	seed       int64
	records    []model.YearRecord
	indicators []model.YearIndicators
	stats      model.SummaryStats
	genErr     error
	loaded     bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	chronoCursor int
	settings     settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 160
	minContentHeight = 5
)

// dataMsg carries a finished generation back into the update loop.
type dataMsg struct {
	seed       int64
	records    []model.YearRecord
	indicators []model.YearIndicators
	stats      model.SummaryStats
	err        error
}

// NewApp creates the dashboard model for the given configuration.
func NewApp(cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		cfg:       cfg,
		seed:      cfg.Simulation.Seed,
		needSetup: !config.Exists(),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.spinner.Tick,
		generateCmd(a.cfg, a.seed),
	}
	return tea.Batch(cmds...)
}

// generateCmd runs the simulation in a background goroutine.
func generateCmd(cfg config.Config, seed int64) tea.Cmd {
	return func() tea.Msg {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sim := cfg.Simulation
		sim.Seed = seed

		gen, err := simulate.New(sim)
		if err != nil {
			return dataMsg{seed: seed, err: err}
		}
		records := gen.Run()

		stats, err := pipeline.Aggregate(records, cfg.Party, sim.BaseDebt)
		if err != nil {
			return dataMsg{seed: seed, err: err}
		}

		return dataMsg{
			seed:       seed,
			records:    records,
			indicators: pipeline.WithDebt(records, sim.BaseDebt),
			stats:      stats,
		}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm == nil && a.needSetup {
			a.setupForm = newSetupForm(a.cfg, &a.setupVals)
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
			return a, a.setupForm.Init()
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if !a.loaded {
			return a, nil
		}

		// Settings tab text input intercepts all keys while editing
		if a.activeTab == tabReglages && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			// Fresh clock-based seed
			a.loaded = false
			a.genErr = nil
			return a, tea.Batch(a.spinner.Tick, generateCmd(a.cfg, 0))
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		case "j", "down":
			if a.activeTab == tabChronologie && a.chronoCursor < len(a.indicators)-1 {
				a.chronoCursor++
			}
			if a.activeTab == tabReglages && a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
				a.settings.saved = false
			}
			return a, nil
		case "k", "up":
			if a.activeTab == tabChronologie && a.chronoCursor > 0 {
				a.chronoCursor--
			}
			if a.activeTab == tabReglages && a.settings.cursor > 0 {
				a.settings.cursor--
				a.settings.saved = false
			}
			return a, nil
		case "enter":
			if a.activeTab == tabReglages {
				return a.settingsStartEdit()
			}
			return a, nil
		}

		if len(key) > 0 {
			if idx := components.TabIdxByKey([]rune(key)[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case dataMsg:
		a.loaded = true
		a.seed = msg.seed
		a.genErr = msg.err
		if msg.err == nil {
			a.records = msg.records
			a.indicators = msg.indicators
			a.stats = msg.stats
			if a.chronoCursor >= len(a.indicators) {
				a.chronoCursor = 0
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		a.loaded = false
		return a, tea.Batch(a.spinner.Tick, generateCmd(a.cfg, a.cfg.Simulation.Seed))
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal trop étroit (%d colonnes)\n\n  partifin requiert au moins %d colonnes.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ partifin"))
	b.WriteString(subtitleStyle.Render(" · " + a.cfg.Party.Name))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf(" Génération %d-%d...",
		a.cfg.Simulation.StartYear, a.cfg.Simulation.EndYear)))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"s c t g", "Aller à l'onglet"},
		{"← → tab", "Onglet précédent / suivant"},
		{"j k", "Naviguer dans les listes"},
		{"Entrée", "Modifier (Réglages)"},
		{"r", "Régénérer avec une nouvelle graine"},
		{"?", "Afficher / masquer l'aide"},
		{"q", "Quitter"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Raccourcis clavier"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Appuyez sur une touche pour fermer"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.seed,
		a.cfg.Simulation.StartYear, a.cfg.Simulation.EndYear)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.genErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		content = components.ContentCard("Erreur",
			errStyle.Render(a.genErr.Error()), cw)
	} else {
		switch a.activeTab {
		case tabSynthese:
			content = a.renderSyntheseTab(cw)
		case tabChronologie:
			content = a.renderChronologieTab(cw, contentH)
		case tabStructure:
			content = a.renderStructureTab(cw)
		case tabReglages:
			content = a.renderReglagesTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// Tab indices, matching components.Tabs order.
const (
	tabSynthese = iota
	tabChronologie
	tabStructure
	tabReglages
)

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color so
// gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
