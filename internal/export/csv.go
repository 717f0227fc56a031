// Package export persists a generated history as the CSV artifact and
// reads it back for verification.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"partifin/internal/model"
)

// Header is the fixed CSV column order.
var Header = []string{"Annee", "Adherents", "Revenus_Total", "Depenses_Total", "Taux_Execution_Budget"}

// WriteCSV writes one row per record to path. The write is atomic: rows go
// to a temp file in the destination directory which is renamed over the
// target only after a successful flush, so no half-written file remains.
func WriteCSV(path string, records []model.YearRecord) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// No-ops once the rename has succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.Members, 'f', 2, 64),
			strconv.FormatFloat(r.TotalRevenue, 'f', 2, 64),
			strconv.FormatFloat(r.TotalExpense, 'f', 2, 64),
			strconv.FormatFloat(r.ExecutionRate, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Year, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}

	return nil
}

// ReadCSV parses a previously written artifact back into records.
func ReadCSV(path string) ([]model.YearRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	var records []model.YearRecord
	for i, row := range rows[1:] { // skip header
		if len(row) != len(Header) {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", path, i+2, len(row), len(Header))
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (model.YearRecord, error) {
	var rec model.YearRecord
	var err error

	if rec.Year, err = strconv.Atoi(row[0]); err != nil {
		return rec, fmt.Errorf("year: %w", err)
	}
	if rec.Members, err = strconv.ParseFloat(row[1], 64); err != nil {
		return rec, fmt.Errorf("members: %w", err)
	}
	if rec.TotalRevenue, err = strconv.ParseFloat(row[2], 64); err != nil {
		return rec, fmt.Errorf("revenue: %w", err)
	}
	if rec.TotalExpense, err = strconv.ParseFloat(row[3], 64); err != nil {
		return rec, fmt.Errorf("expense: %w", err)
	}
	if rec.ExecutionRate, err = strconv.ParseFloat(row[4], 64); err != nil {
		return rec, fmt.Errorf("execution rate: %w", err)
	}

	return rec, nil
}
