package export

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"partifin/internal/config"
	"partifin/internal/model"
	"partifin/internal/pipeline"
	"partifin/internal/simulate"
)

func testRecords() []model.YearRecord {
	return []model.YearRecord{
		{Year: 2002, Members: 150000.5, TotalRevenue: 45.12, TotalExpense: 42.88, ExecutionRate: 0.8512},
		{Year: 2003, Members: 172500, TotalRevenue: 50.4, TotalExpense: 47.1, ExecutionRate: 0.9},
	}
}

func TestWriteCSV_HeaderAndRowCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(path, testRecords()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "Annee,Adherents,Revenus_Total,Depenses_Total,Taux_Execution_Budget" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2002,150000.50,45.12,42.88,0.8512" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := testRecords()

	if err := WriteCSV(path, records); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(records) {
		t.Fatalf("len = %d, want %d", len(got), len(records))
	}
	for i := range got {
		if got[i].Year != records[i].Year {
			t.Errorf("record %d: Year = %d, want %d", i, got[i].Year, records[i].Year)
		}
		// Values survive with the written precision (2 decimals, 4 for the rate)
		if math.Abs(got[i].TotalRevenue-records[i].TotalRevenue) > 0.005 {
			t.Errorf("record %d: TotalRevenue = %f, want %f", i, got[i].TotalRevenue, records[i].TotalRevenue)
		}
		if math.Abs(got[i].ExecutionRate-records[i].ExecutionRate) > 0.00005 {
			t.Errorf("record %d: ExecutionRate = %f, want %f", i, got[i].ExecutionRate, records[i].ExecutionRate)
		}
	}
}

func TestWriteCSV_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := os.WriteFile(path, []byte("stale contents"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(path, testRecords()); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestWriteCSV_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	if err := WriteCSV(path, testRecords()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.csv" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want [out.csv]", names)
	}
}

func TestWriteCSV_EmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(path, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("line count = %d, want header only", len(lines))
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("ReadCSV succeeded on a missing file")
	}
}

func TestReadCSV_MalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "Annee,Adherents,Revenus_Total,Depenses_Total,Taux_Execution_Budget\nnot-a-year,1,2,3,0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ReadCSV(path)
	if err == nil {
		t.Fatal("ReadCSV accepted a malformed year")
	}
}

// Full artifact cycle: generate a history, write it, read it back and
// check the re-aggregated means against the originals within rounding
// tolerance (values carry 2 decimals, execution rates 4).
func TestWriteCSV_GenerateAggregateCycle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Simulation.Seed = 42

	gen, err := simulate.New(cfg.Simulation)
	if err != nil {
		t.Fatal(err)
	}
	records := gen.Run()
	if len(records) != 24 {
		t.Fatalf("record count = %d, want 24 for 2002-2025", len(records))
	}

	path := filepath.Join(t.TempDir(), "histoire.csv")
	if err := WriteCSV(path, records); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 25 {
		t.Fatalf("line count = %d, want 25 (header + 24 rows)", len(lines))
	}

	readBack, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(readBack) != len(records) {
		t.Fatalf("read back %d records, want %d", len(readBack), len(records))
	}

	want, err := pipeline.Aggregate(records, cfg.Party, cfg.Simulation.BaseDebt)
	if err != nil {
		t.Fatal(err)
	}
	got, err := pipeline.Aggregate(readBack, cfg.Party, cfg.Simulation.BaseDebt)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got.MeanMembers-want.MeanMembers) > 0.005 {
		t.Errorf("mean members = %f, want %f", got.MeanMembers, want.MeanMembers)
	}
	if math.Abs(got.MeanRevenue-want.MeanRevenue) > 0.005 {
		t.Errorf("mean revenue = %f, want %f", got.MeanRevenue, want.MeanRevenue)
	}
	if math.Abs(got.MeanExpense-want.MeanExpense) > 0.005 {
		t.Errorf("mean expense = %f, want %f", got.MeanExpense, want.MeanExpense)
	}
	if math.Abs(got.MeanExecutionRate-want.MeanExecutionRate) > 0.00005 {
		t.Errorf("mean execution rate = %f, want %f", got.MeanExecutionRate, want.MeanExecutionRate)
	}
	if got.StartYear != 2002 || got.EndYear != 2025 {
		t.Errorf("period = %d-%d, want 2002-2025", got.StartYear, got.EndYear)
	}
}
