package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func newTestRepo(t *testing.T) *RepositorySQLite {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := NewRepositorySQLite(db)
	if err := r.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return r
}

func TestUpsertAndGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Upsert(ctx, "user-1", "nova"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	voice, found, err := r.GetById(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetById failed: %v", err)
	}
	if !found || voice != "nova" {
		t.Errorf("got voice=%q found=%v, want nova/true", voice, found)
	}

	// second upsert replaces the voice
	if err := r.Upsert(ctx, "user-1", "onyx"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	voice, found, err = r.GetById(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetById failed: %v", err)
	}
	if !found || voice != "onyx" {
		t.Errorf("got voice=%q found=%v, want onyx/true", voice, found)
	}
}

func TestGetUnknownUser(t *testing.T) {
	r := newTestRepo(t)

	voice, found, err := r.GetById(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetById failed: %v", err)
	}
	if found || voice != "" {
		t.Errorf("got voice=%q found=%v, want empty/false", voice, found)
	}
}

func TestDeleteById(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Upsert(ctx, "user-1", "echo"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	ok, err := r.DeleteById(ctx, "user-1")
	if err != nil {
		t.Fatalf("DeleteById failed: %v", err)
	}
	if !ok {
		t.Error("expected a row to be deleted")
	}

	ok, err = r.DeleteById(ctx, "user-1")
	if err != nil {
		t.Fatalf("second DeleteById failed: %v", err)
	}
	if ok {
		t.Error("expected no rows on second delete")
	}
}
