package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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
	store := openTestStore(t)

	rec := RunRecord{
		Scenario:   "bounce",
		Seed:       42,
		Ticks:      900,
		Collisions: 12,
		WallHits:   30,
		Spawned:    2,
		PeakActive: 2,
		Duration:   1500 * time.Millisecond,
	}
	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Scenario != "bounce" || got.Seed != 42 || got.Ticks != 900 || got.Collisions != 12 {
		t.Errorf("RunByID() = %+v, expected saved fields", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreKeepsProvidedID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{ID: "fixed-id", Scenario: "depth"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() id = %q, expected fixed-id", id)
	}
	if _, err := store.SaveRun(RunRecord{ID: "fixed-id", Scenario: "depth"}); err == nil {
		t.Error("SaveRun() with a duplicate id should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(RunRecord{Scenario: "shapes", Ticks: i + 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(RunRecord{Scenario: "areas", Ticks: 99}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("shapes", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Ticks != 5 || runs[2].Ticks != 3 {
		t.Errorf("RecentRuns() ticks = %d..%d, expected 5..3", runs[0].Ticks, runs[2].Ticks)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 runs across scenarios, got %d", len(all))
	}
}

func TestStoreRunCountAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Scenario: "random"})
	store.SaveRun(RunRecord{Scenario: "random"})
	store.SaveRun(RunRecord{Scenario: "bounce"})

	if n, _ := store.RunCount("random"); n != 2 {
		t.Errorf("RunCount(random) = %d, expected 2", n)
	}
	if err := store.ClearRuns("random"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.RunCount("random"); n != 0 {
		t.Errorf("RunCount(random) after clear = %d, expected 0", n)
	}
	if n, _ := store.RunCount("bounce"); n != 1 {
		t.Errorf("RunCount(bounce) = %d, expected 1", n)
	}
}

func TestStoreScenarioStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetScenarioStats("depth")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.CollisionsPerTick() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{Scenario: "depth", Ticks: 100, Collisions: 10})
	store.SaveRun(RunRecord{Scenario: "depth", Ticks: 300, Collisions: 30})

	stats, err := store.GetScenarioStats("depth")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.TotalTicks != 400 || stats.MaxCollisions != 30 {
		t.Errorf("stats = %+v, expected 2 runs, 400 ticks, max 30", stats)
	}
	if stats.CollisionsPerTick() != 0.1 {
		t.Errorf("CollisionsPerTick() = %v, expected 0.1", stats.CollisionsPerTick())
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tsprite/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tsprite", "runs.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
