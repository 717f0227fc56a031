package store

import (
	"path/filepath"
	"testing"

	"partifin/internal/model"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func testRecords() []model.YearRecord {
	return []model.YearRecord{
		{Year: 2002, Members: 150000, TotalRevenue: 45, TotalExpense: 42, ExecutionRate: 0.85},
		{Year: 2003, Members: 160000, TotalRevenue: 48, TotalExpense: 46, ExecutionRate: 0.88},
		{Year: 2004, Members: 170000, TotalRevenue: 52, TotalExpense: 50, ExecutionRate: 0.86},
	}
}

func TestSaveRun_RoundTrip(t *testing.T) {
	a := openTestArchive(t)

	runID, err := a.SaveRun(42, testRecords())
	if err != nil {
		t.Fatal(err)
	}
	if runID <= 0 {
		t.Fatalf("runID = %d, want > 0", runID)
	}

	got, err := a.LoadRun(runID)
	if err != nil {
		t.Fatal(err)
	}
	want := testRecords()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestListRuns_MostRecentFirst(t *testing.T) {
	a := openTestArchive(t)

	first, err := a.SaveRun(1, testRecords())
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.SaveRun(2, testRecords()[:1])
	if err != nil {
		t.Fatal(err)
	}

	runs, err := a.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("order = [%d %d], want [%d %d]", runs[0].ID, runs[1].ID, second, first)
	}
	if runs[0].Seed != 2 {
		t.Errorf("Seed = %d, want 2", runs[0].Seed)
	}
	if runs[0].RecordCount != 1 {
		t.Errorf("RecordCount = %d, want 1", runs[0].RecordCount)
	}
	if runs[1].StartYear != 2002 || runs[1].EndYear != 2004 {
		t.Errorf("range = %d-%d, want 2002-2004", runs[1].StartYear, runs[1].EndYear)
	}
	if runs[0].GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}
}

func TestListRuns_EmptyArchive(t *testing.T) {
	a := openTestArchive(t)

	runs, err := a.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}

func TestLoadRun_UnknownID(t *testing.T) {
	a := openTestArchive(t)

	records, err := a.LoadRun(12345)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestSaveRun_EmptyHistory(t *testing.T) {
	a := openTestArchive(t)

	runID, err := a.SaveRun(7, nil)
	if err != nil {
		t.Fatal(err)
	}

	runs, err := a.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].ID != runID || runs[0].RecordCount != 0 {
		t.Errorf("run = %+v, want ID %d with 0 records", runs[0], runID)
	}
}
