package cmd

import (
	"fmt"

	"partifin/internal/cli"
	"partifin/internal/pipeline"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Tableau des statistiques descriptives",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	records, cfg, err := buildHistory()
	if err != nil {
		return err
	}

	stats, err := pipeline.Aggregate(records, cfg.Party, cfg.Simulation.BaseDebt)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %d-%d", cfg.Party.ShortName, stats.StartYear, stats.EndYear)))
	fmt.Println()

	rows := [][]string{
		{"Années simulées", cli.FormatNumber(int64(stats.Years))},
		{"---"},
		{"Revenus moyens", cli.FormatMillions(stats.MeanRevenue)},
		{"Dépenses moyennes", cli.FormatMillions(stats.MeanExpense)},
		{"Adhérents moyens", cli.FormatCount(stats.MeanMembers)},
		{"Taux d'exécution moyen", cli.FormatPercent(stats.MeanExecutionRate)},
		{"---"},
		{"Évolution des revenus", cli.FormatPercentPoints(stats.RevenueChangePercent)},
		{"Évolution des adhérents", cli.FormatPercentPoints(stats.MembersChangePercent)},
		{"---"},
		{"Solde moyen", cli.FormatPercentPoints(stats.MeanBalancePercent) + " du budget"},
		{"Endettement final", cli.FormatMillions(stats.FinalDebt)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Indicateur", "Valeur"},
		Rows:    rows,
	}))

	// Revenue trend sparkline under the table.
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.TotalRevenue
	}
	fmt.Printf("  Revenus %d-%d  %s\n\n", stats.StartYear, stats.EndYear, cli.RenderSparkline(values))

	return nil
}
