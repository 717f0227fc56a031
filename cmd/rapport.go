package cmd

import (
	"fmt"
	"os"

	"partifin/internal/export"
	"partifin/internal/pipeline"
	"partifin/internal/report"

	"github.com/spf13/cobra"
)

var rapportCmd = &cobra.Command{
	Use:   "rapport",
	Short: "Génère les données, écrit le CSV et imprime le rapport complet",
	RunE:  runRapport,
}

func init() {
	rootCmd.AddCommand(rapportCmd)
}

func runRapport(_ *cobra.Command, _ []string) error {
	records, cfg, err := buildHistory()
	if err != nil {
		return err
	}

	if err := export.WriteCSV(cfg.Output.CSVPath, records); err != nil {
		return fmt.Errorf("écriture CSV: %w", err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  💾 Données sauvegardées: %s\n", cfg.Output.CSVPath)
	}

	stats, err := pipeline.Aggregate(records, cfg.Party, cfg.Simulation.BaseDebt)
	if err != nil {
		return err
	}

	report.Write(os.Stdout, stats, cfg.Party)
	return nil
}
