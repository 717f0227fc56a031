package cmd

import (
	"fmt"

	"partifin/internal/cli"
	"partifin/internal/pipeline"

	"github.com/spf13/cobra"
)

var chronologieCmd = &cobra.Command{
	Use:   "chronologie",
	Short: "Tableau année par année",
	RunE:  runChronologie,
}

func init() {
	rootCmd.AddCommand(chronologieCmd)
}

func runChronologie(_ *cobra.Command, _ []string) error {
	records, cfg, err := buildHistory()
	if err != nil {
		return err
	}

	indicators := pipeline.WithDebt(records, cfg.Simulation.BaseDebt)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CHRONOLOGIE  %d-%d", records[0].Year, records[len(records)-1].Year)))
	fmt.Println()

	rows := make([][]string, 0, len(indicators))
	for _, ind := range indicators {
		rows = append(rows, []string{
			fmt.Sprintf("%d", ind.Year),
			cli.FormatCount(ind.Members),
			cli.FormatMillions(ind.TotalRevenue),
			cli.FormatMillions(ind.TotalExpense),
			cli.FormatPercent(ind.ExecutionRate),
			cli.FormatSignedPercent(ind.BalancePercent()),
			cli.FormatMillions(ind.Debt),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Année", "Adhérents", "Revenus", "Dépenses", "Exécution", "Solde", "Dette"},
		Rows:    rows,
	}))

	return nil
}
