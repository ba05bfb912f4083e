package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	solves := []SolveEntry{
		{Rows: 4, Cols: 6, Pieces: 24, Moves: 30, DurationSecs: 120, Picture: "builtin"},
		{Rows: 4, Cols: 6, Pieces: 24, Moves: 25, DurationSecs: 90, Picture: "cat.png"},
		{Rows: 4, Cols: 6, Pieces: 24, Moves: 40, DurationSecs: 200, Picture: "builtin"},
		{Rows: 8, Cols: 12, Pieces: 96, Moves: 110, DurationSecs: 900, Picture: "cat.png"},
	}
	for _, e := range solves {
		if _, err := store.SaveSolve(e); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	// Best solves for the 4x6 grid, fastest first
	best, err := store.BestSolves(4, 6, 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 solves for 4x6, got %d", len(best))
	}
	if best[0].DurationSecs != 90 {
		t.Errorf("Expected fastest solve 90s, got %d", best[0].DurationSecs)
	}
	if best[2].DurationSecs != 200 {
		t.Errorf("Expected slowest solve 200s, got %d", best[2].DurationSecs)
	}

	// Recent solves span all grids
	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("Expected 4 recent solves, got %d", len(recent))
	}
}

func TestStoreBestDuration(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No solves yet
	secs, err := store.BestDuration(4, 6)
	if err != nil {
		t.Fatalf("BestDuration() failed: %v", err)
	}
	if secs != 0 {
		t.Errorf("Expected 0 for empty table, got %d", secs)
	}

	if _, err := store.SaveSolve(SolveEntry{Rows: 4, Cols: 6, Pieces: 24, Moves: 30, DurationSecs: 150}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve(SolveEntry{Rows: 4, Cols: 6, Pieces: 24, Moves: 28, DurationSecs: 110}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	secs, err = store.BestDuration(4, 6)
	if err != nil {
		t.Fatalf("BestDuration() failed: %v", err)
	}
	if secs != 110 {
		t.Errorf("Expected best duration 110, got %d", secs)
	}

	// Other grid sizes are unaffected
	secs, err = store.BestDuration(8, 12)
	if err != nil {
		t.Fatalf("BestDuration() failed: %v", err)
	}
	if secs != 0 {
		t.Errorf("Expected 0 for unplayed grid, got %d", secs)
	}
}

func TestStoreClear(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveSolve(SolveEntry{Rows: 3, Cols: 4, Pieces: 12, Moves: 15, DurationSecs: 60}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	if err := store.ClearSolves(); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no solves after clear, got %d", len(recent))
	}
}
