package cmd

import (
	"fmt"
	"strings"

	"partifin/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Affiche la configuration effective",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Fichier: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Statut: chargé")
	} else {
		fmt.Println("  Statut: valeurs par défaut (pas de fichier)")
	}
	fmt.Println()

	fmt.Println("  [Parti]")
	fmt.Printf("    Nom:         %s\n", cfg.Party.Name)
	fmt.Printf("    Orientation: %s\n", cfg.Party.Orientation)
	fmt.Printf("    Électorat:   %s\n", strings.Join(cfg.Party.Electorate, ", "))
	fmt.Println()

	fmt.Println("  [Simulation]")
	fmt.Printf("    Période:       %d-%d\n", cfg.Simulation.StartYear, cfg.Simulation.EndYear)
	fmt.Printf("    Budget de base: %.1f M€\n", cfg.Simulation.BaseBudget)
	fmt.Printf("    Adhérents de base: %.0f\n", cfg.Simulation.BaseMembers)
	fmt.Printf("    Graine:        %d\n", cfg.Simulation.Seed)
	fmt.Println()

	fmt.Println("  [Sortie]")
	fmt.Printf("    CSV:       %s\n", cfg.Output.CSVPath)
	fmt.Printf("    Graphique: %s\n", cfg.Output.ChartPath)
	fmt.Println()

	fmt.Println("  [Apparence]")
	fmt.Printf("    Thème: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Lancez `partifin setup` pour reconfigurer.")
	return nil
}
