package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id        INTEGER PRIMARY KEY AUTOINCREMENT,
    generated_at  TEXT NOT NULL,
    seed          INTEGER NOT NULL,
    start_year    INTEGER NOT NULL,
    end_year      INTEGER NOT NULL,
    record_count  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_years (
    run_id          INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    year            INTEGER NOT NULL,
    members         REAL NOT NULL,
    total_revenue   REAL NOT NULL,
    total_expense   REAL NOT NULL,
    execution_rate  REAL NOT NULL,
    PRIMARY KEY (run_id, year)
);

CREATE INDEX IF NOT EXISTS idx_runs_generated ON runs(generated_at);
`
