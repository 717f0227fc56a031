// Package store provides a SQLite-backed archive of generation runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"partifin/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive records every generation run so past histories can be listed
// and re-displayed without regenerating.
type Archive struct {
	db *sql.DB
}

// Run is one archived generation run.
type Run struct {
	ID          int64
	GeneratedAt time.Time
	Seed        int64
	StartYear   int
	EndYear     int
	RecordCount int
}

// DefaultPath returns the archive location under the user data dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "partifin", "runs.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "partifin", "runs.db")
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveRun stores one generated history and returns its run ID.
func (a *Archive) SaveRun(seed int64, records []model.YearRecord) (int64, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	startYear, endYear := 0, 0
	if len(records) > 0 {
		startYear = records[0].Year
		endYear = records[len(records)-1].Year
	}

	res, err := tx.Exec(`INSERT INTO runs (generated_at, seed, start_year, end_year, record_count)
		VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), seed, startYear, endYear, len(records),
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range records {
		_, err = tx.Exec(`INSERT INTO run_years (run_id, year, members, total_revenue, total_expense, execution_rate)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, r.Year, r.Members, r.TotalRevenue, r.TotalExpense, r.ExecutionRate,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// ListRuns returns all archived runs, most recent first.
func (a *Archive) ListRuns() ([]Run, error) {
	rows, err := a.db.Query(`SELECT run_id, generated_at, seed, start_year, end_year, record_count
		FROM runs ORDER BY run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var generatedAt string
		if err := rows.Scan(&r.ID, &generatedAt, &r.Seed, &r.StartYear, &r.EndYear, &r.RecordCount); err != nil {
			return nil, err
		}
		r.GeneratedAt, _ = time.Parse(time.RFC3339, generatedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadRun reads the records of one archived run, ordered by year.
func (a *Archive) LoadRun(runID int64) ([]model.YearRecord, error) {
	rows, err := a.db.Query(`SELECT year, members, total_revenue, total_expense, execution_rate
		FROM run_years WHERE run_id = ? ORDER BY year`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.YearRecord
	for rows.Next() {
		var r model.YearRecord
		if err := rows.Scan(&r.Year, &r.Members, &r.TotalRevenue, &r.TotalExpense, &r.ExecutionRate); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
