package cmd

import (
	"fmt"
	"strconv"

	"partifin/internal/cli"
	"partifin/internal/store"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Liste les générations archivées, ou réaffiche l'une d'elles",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runRuns(_ *cobra.Command, args []string) error {
	archive, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer archive.Close()

	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("identifiant de run invalide: %q", args[0])
		}
		return showRun(archive, runID)
	}

	runs, err := archive.ListRuns()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("\n  Aucune génération archivée.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GÉNÉRATIONS ARCHIVÉES"))
	fmt.Println()

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.GeneratedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d-%d", r.StartYear, r.EndYear),
			cli.FormatNumber(int64(r.RecordCount)),
			fmt.Sprintf("%d", r.Seed),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Run", "Date", "Période", "Années", "Graine"},
		Rows:    rows,
	}))

	return nil
}

// showRun re-displays one archived history without regenerating it.
func showRun(archive *store.Archive, runID int64) error {
	records, err := archive.LoadRun(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("run %d introuvable dans l'archive", runID)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RUN %d  %d-%d (archive)",
		runID, records[0].Year, records[len(records)-1].Year)))
	fmt.Println()

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Year),
			cli.FormatCount(r.Members),
			cli.FormatMillions(r.TotalRevenue),
			cli.FormatMillions(r.TotalExpense),
			cli.FormatPercent(r.ExecutionRate),
			cli.FormatSignedPercent(r.BalancePercent()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Année", "Adhérents", "Revenus", "Dépenses", "Exécution", "Solde"},
		Rows:    rows,
	}))

	return nil
}
