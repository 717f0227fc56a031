// Package cmd implements the partifin CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"partifin/internal/config"
	"partifin/internal/model"
	"partifin/internal/simulate"
	"partifin/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagStartYear int
	flagEndYear   int
	flagSeed      int64
	flagOutput    string
	flagQuiet     bool
	flagNoArchive bool
)

var rootCmd = &cobra.Command{
	Use:   "partifin",
	Short: "Simulateur de finances de parti politique",
	Long:  "Génère un historique financier plausible de l'UMP/Les Républicains, l'exporte en CSV et imprime une analyse narrative.",
	RunE:  runRapport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagStartYear, "debut", 0, "Première année simulée (défaut: configuration)")
	rootCmd.PersistentFlags().IntVar(&flagEndYear, "fin", 0, "Dernière année simulée (défaut: configuration)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Graine aléatoire (0 = configuration)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "sortie", "o", "", "Chemin du fichier CSV (défaut: configuration)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Supprime les messages de progression")
	rootCmd.PersistentFlags().BoolVar(&flagNoArchive, "no-archive", false, "N'enregistre pas la génération dans l'archive")
}

// loadConfig merges persistent flag overrides over the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	if flagStartYear != 0 {
		cfg.Simulation.StartYear = flagStartYear
	}
	if flagEndYear != 0 {
		cfg.Simulation.EndYear = flagEndYear
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	if flagOutput != "" {
		cfg.Output.CSVPath = flagOutput
	}

	return cfg, nil
}

// buildHistory is the shared generation path used by all commands. It
// resolves the effective seed up front so runs can be archived with it.
func buildHistory() ([]model.YearRecord, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	gen, err := simulate.New(cfg.Simulation)
	if err != nil {
		return nil, cfg, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Génération %d-%d (graine %d)...\n",
			cfg.Simulation.StartYear, cfg.Simulation.EndYear, cfg.Simulation.Seed)
	}

	records := gen.Run()

	if !flagNoArchive {
		archiveRun(cfg.Simulation.Seed, records)
	}

	return records, cfg, nil
}

// archiveRun saves the run to the SQLite archive. Archiving is
// best-effort: a failure warns but never aborts the main pass.
func archiveRun(seed int64, records []model.YearRecord) {
	archive, err := store.Open(store.DefaultPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Archive indisponible: %v\n", err)
		}
		return
	}
	defer archive.Close()

	if _, err := archive.SaveRun(seed, records); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Échec de l'archivage: %v\n", err)
	}
}
