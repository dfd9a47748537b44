package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestStorage(t *testing.T) *Storage {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStorageAt(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return s
}

func TestSetAndGetRecord(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	if err := s.SetRecord(ctx, "greeting", `"hello"`); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	rec, err := s.GetRecord(ctx, "greeting")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec == nil {
		t.Fatal("fetched record is nil")
	}
	if rec.Value != `"hello"` {
		t.Errorf("expected value %q, got %q", `"hello"`, rec.Value)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	rec, err := s.GetRecord(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for missing key")
	}
}

func TestOverwriteRecord(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	s.SetRecord(ctx, "k", "before")
	if err := s.SetRecord(ctx, "k", "after"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	rec, _ := s.GetRecord(ctx, "k")
	if rec.Value != "after" {
		t.Errorf("expected value 'after', got '%s'", rec.Value)
	}
}

func TestDeleteRecord(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	s.SetRecord(ctx, "k", "v")
	if err := s.DeleteRecord(ctx, "k"); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}

	rec, err := s.GetRecord(ctx, "k")
	if err != nil {
		t.Fatalf("GetRecord after delete failed: %v", err)
	}
	if rec != nil {
		t.Error("expected record to be deleted, but found one")
	}
}
