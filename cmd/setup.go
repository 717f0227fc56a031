package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"partifin/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Assistant de configuration",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Bienvenue dans partifin !")
	fmt.Println()

	// 1. Year range
	fmt.Println("  1. Période simulée")
	fmt.Printf("     Actuelle: %d-%d\n", cfg.Simulation.StartYear, cfg.Simulation.EndYear)
	fmt.Print("     Première année > ")
	if y, ok := readInt(reader); ok {
		cfg.Simulation.StartYear = y
	}
	fmt.Print("     Dernière année > ")
	if y, ok := readInt(reader); ok {
		cfg.Simulation.EndYear = y
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return err
	}
	fmt.Println()

	// 2. Seed
	fmt.Println("  2. Graine aléatoire")
	fmt.Println("     Une graine fixe rend les générations reproductibles (0 = horloge).")
	fmt.Printf("     Actuelle: %d\n", cfg.Simulation.Seed)
	fmt.Print("     > ")
	if s, ok := readInt(reader); ok {
		cfg.Simulation.Seed = int64(s)
	}
	fmt.Println()

	// 3. CSV path
	fmt.Println("  3. Fichier CSV de sortie")
	fmt.Printf("     Actuel: %s\n", cfg.Output.CSVPath)
	fmt.Print("     > ")
	if line, _ := reader.ReadString('\n'); strings.TrimSpace(line) != "" {
		cfg.Output.CSVPath = strings.TrimSpace(line)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Thème de couleurs")
	fmt.Printf("     Actuel: %s\n", cfg.Appearance.Theme)
	fmt.Println("     (1) Flexoki Dark")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	cfg.Appearance.Theme = themeChoice(choice, cfg.Appearance.Theme)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("sauvegarde de la configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Enregistré dans %s\n", config.Path())
	fmt.Println("  Lancez `partifin setup` à tout moment pour reconfigurer.")
	fmt.Println()

	return nil
}

// themeChoice maps a menu selection to a theme name; blank or unknown
// input keeps the current theme.
func themeChoice(choice, current string) string {
	switch strings.TrimSpace(choice) {
	case "1":
		return "flexoki-dark"
	case "2":
		return "catppuccin-mocha"
	case "3":
		return "tokyo-night"
	case "4":
		return "terminal"
	default:
		return current
	}
}

// readInt reads one line and parses it as an int; blank input returns
// ok=false so the caller keeps the current value.
func readInt(reader *bufio.Reader) (int, bool) {
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return v, true
}
