// Package report renders the French narrative insight report.
package report

import (
	"fmt"
	"io"
	"strings"

	"partifin/internal/cli"
	"partifin/internal/config"
	"partifin/internal/model"
)

// Write renders the full insight report for one generated history: the
// computed statistics merged with the party's static metadata, in seven
// fixed sections.
func Write(w io.Writer, stats model.SummaryStats, party config.PartyConfig) {
	fmt.Fprintf(w, "🏛️ INSIGHTS ANALYTIQUES - %s (%d-%d)\n", party.Name, stats.StartYear, stats.EndYear)
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintln(w, "\n1. 📈 STATISTIQUES GÉNÉRALES:")
	fmt.Fprintf(w, "Revenus moyens annuels: %s\n", cli.FormatMillions(stats.MeanRevenue))
	fmt.Fprintf(w, "Dépenses moyennes annuelles: %s\n", cli.FormatMillions(stats.MeanExpense))
	fmt.Fprintf(w, "Adhérents moyens: %s personnes\n", cli.FormatCount(stats.MeanMembers))
	fmt.Fprintf(w, "Taux d'exécution budgétaire moyen: %s\n", cli.FormatPercent(stats.MeanExecutionRate))

	fmt.Fprintln(w, "\n2. 📊 ÉVOLUTION HISTORIQUE:")
	fmt.Fprintf(w, "Évolution des revenus (%d-%d): %s\n",
		stats.StartYear, stats.EndYear, cli.FormatPercentPoints(stats.RevenueChangePercent))
	fmt.Fprintf(w, "Évolution des adhérents (%d-%d): %s\n",
		stats.StartYear, stats.EndYear, cli.FormatPercentPoints(stats.MembersChangePercent))

	fmt.Fprintln(w, "\n3. 📋 STRUCTURE FINANCIÈRE:")
	for _, share := range stats.FundingShares {
		fmt.Fprintf(w, "Part des %s dans les revenus: %s (%s)\n",
			shareLabel(share.Source), cli.FormatPercentPoints(share.Percent), cli.FormatMillions(share.Amount))
	}

	fmt.Fprintln(w, "\n4. 🎯 PERFORMANCE FINANCIÈRE:")
	fmt.Fprintf(w, "Solde financier moyen: %s du budget\n", cli.FormatPercentPoints(stats.MeanBalancePercent))
	fmt.Fprintf(w, "Endettement final: %s\n", cli.FormatMillions(stats.FinalDebt))

	fmt.Fprintln(w, "\n5. 🌟 SPÉCIFICITÉS DU PARTI:")
	fmt.Fprintf(w, "Orientation politique: %s\n", party.Orientation)
	fmt.Fprintf(w, "Électorat cible: %s\n", strings.Join(party.Electorate, ", "))
	fmt.Fprintf(w, "Sources de financement: %s\n", strings.Join(sourceNames(party.FundingSources), ", "))

	fmt.Fprintln(w, "\n6. 📅 ÉVÉNEMENTS MARQUANTS:")
	for _, ev := range party.Events {
		fmt.Fprintf(w, "• %d: %s\n", ev.Year, ev.Label)
	}

	fmt.Fprintln(w, "\n7. 💡 RECOMMANDATIONS STRATÉGIQUES:")
	for _, rec := range party.Recommendations {
		fmt.Fprintf(w, "• %s\n", rec)
	}
}

// shareLabel turns a snake_case source key into a readable French label.
func shareLabel(source string) string {
	return strings.ReplaceAll(source, "_", " ")
}

func sourceNames(sources []config.FundingSource) []string {
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
	}
	return names
}
