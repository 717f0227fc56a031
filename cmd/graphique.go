package cmd

import (
	"fmt"
	"os"

	"partifin/internal/chart"

	"github.com/spf13/cobra"
)

var graphiqueCmd = &cobra.Command{
	Use:   "graphique",
	Short: "Rend le graphique PNG revenus/dépenses",
	RunE:  runGraphique,
}

func init() {
	rootCmd.AddCommand(graphiqueCmd)
}

func runGraphique(_ *cobra.Command, _ []string) error {
	records, cfg, err := buildHistory()
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Analyse des Finances de l'%s (%d-%d)",
		cfg.Party.ShortName, records[0].Year, records[len(records)-1].Year)
	if err := chart.SaveRevenueExpense(cfg.Output.ChartPath, title, records); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  📊 Graphique enregistré: %s\n", cfg.Output.ChartPath)
	}
	return nil
}
