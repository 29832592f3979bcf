package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSQLiteEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestSQLiteKV(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	testKV(t, store)
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "levelState", `{"sc:1":true}`); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	v, ok, err := store.Get(ctx, "levelState")
	if err != nil || !ok || v != `{"sc:1":true}` {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestSQLiteSolves(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, moves := range []int{9, 4, 6} {
		if _, err := store.SaveSolve(ctx, "sc:1", moves); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}
	if _, err := store.SaveSolve(ctx, "sc:2", 3); err != nil {
		t.Fatal(err)
	}

	entries, err := store.BestSolves(ctx, "sc:1", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(entries))
	}
	if entries[0].Moves != 4 || entries[1].Moves != 6 || entries[2].Moves != 9 {
		t.Errorf("solves not sorted by moves: %+v", entries)
	}

	best, err := store.BestMoves(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if best["sc:1"] != 4 || best["sc:2"] != 3 {
		t.Errorf("BestMoves = %v", best)
	}

	if err := store.ClearSolves(ctx); err != nil {
		t.Fatal(err)
	}
	best, _ = store.BestMoves(ctx)
	if len(best) != 0 {
		t.Errorf("expected no solves after clear, got %v", best)
	}
}
