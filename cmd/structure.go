package cmd

import (
	"fmt"

	"partifin/internal/cli"
	"partifin/internal/pipeline"

	"github.com/spf13/cobra"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Répartition des revenus par source de financement",
	RunE:  runStructure,
}

func init() {
	rootCmd.AddCommand(structureCmd)
}

func runStructure(_ *cobra.Command, _ []string) error {
	records, cfg, err := buildHistory()
	if err != nil {
		return err
	}

	stats, err := pipeline.Aggregate(records, cfg.Party, cfg.Simulation.BaseDebt)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STRUCTURE FINANCIÈRE  %d-%d", stats.StartYear, stats.EndYear)))
	fmt.Println()

	maxPct := 0.0
	for _, share := range stats.FundingShares {
		if share.Percent > maxPct {
			maxPct = share.Percent
		}
	}

	rows := make([][]string, 0, len(stats.FundingShares)+2)
	total := 0.0
	for _, share := range stats.FundingShares {
		total += share.Percent
		rows = append(rows, []string{
			share.Source,
			cli.FormatMillions(share.Amount),
			cli.FormatPercentPoints(share.Percent),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMillions(stats.MeanRevenue), cli.FormatPercentPoints(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Par source (moyenne annuelle)",
		Headers: []string{"Source", "Montant", "Part"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, share := range stats.FundingShares {
		fmt.Printf("  %-20s %s %s\n",
			share.Source,
			cli.RenderHorizontalBar(share.Percent, maxPct, 30),
			cli.FormatPercentPoints(share.Percent))
	}
	fmt.Println()

	return nil
}
