package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		name  string
		score int
	}{
		{"Alice", 100},
		{"Bob", 50},
		{"Carol", 200},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.name, r.score, 30*time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending by score
	if top[0].Score != 200 || top[0].Name != "Carol" {
		t.Errorf("Expected Carol/200 first, got %s/%d", top[0].Name, top[0].Score)
	}
	if top[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", top[1].Score)
	}
	if top[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", top[2].Score)
	}

	if top[0].Duration != 30*time.Second {
		t.Errorf("Expected duration 30s, got %v", top[0].Duration)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("P", (i+1)*100, time.Minute)
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i, name := range []string{"first", "second", "third"} {
		if _, err := store.SaveRun(name, i*10, time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent runs, got %d", len(recent))
	}
	if recent[0].Name != "third" {
		t.Errorf("Expected the latest run first, got %q", recent[0].Name)
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	// Empty history
	stats, err := store.RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || stats.AvgScore != 0 {
		t.Errorf("Expected zero stats on empty history, got %+v", stats)
	}

	store.SaveRun("A", 100, 10*time.Second)
	store.SaveRun("B", 200, 20*time.Second)

	stats, err = store.RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.BestScore != 200 {
		t.Errorf("Expected best score 200, got %d", stats.BestScore)
	}
	if stats.AvgScore != 150 {
		t.Errorf("Expected average 150, got %.1f", stats.AvgScore)
	}
	if stats.TotalPlay != 30*time.Second {
		t.Errorf("Expected 30s total play, got %v", stats.TotalPlay)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("A", 100, time.Second)
	store.SaveRun("B", 200, time.Second)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected empty history after clear, got %d runs", len(top))
	}
}

func TestRecorderBestEffort(t *testing.T) {
	// A nil store must be safe.
	rec := NewRecorder(nil, nil)
	rec.RecordRun("Anonymous", 0, time.Second)

	store := openTestStore(t)
	rec = NewRecorder(store, nil)
	rec.RecordRun("Player", 40, 90*time.Second)

	top, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 1 || top[0].Name != "Player" || top[0].Score != 40 {
		t.Errorf("Expected the recorded run, got %+v", top)
	}

	// Recording after close must log, not panic.
	store.Close()
	rec.RecordRun("Player", 10, time.Second)
}
