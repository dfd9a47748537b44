package storage

import (
	"context"
	"testing"
)

type kvPayload struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func setupTestKV(t *testing.T) *KV {
	return NewKV(setupTestStorage(t), nil)
}

func TestKV_RoundTrip(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	in := kvPayload{Name: "alpha", Count: 3, Tags: []string{"a", "b"}}
	kv.Set(ctx, "payload", in)

	var out kvPayload
	if !kv.Get(ctx, "payload", &out) {
		t.Fatal("expected value to be present")
	}
	if out.Name != in.Name || out.Count != in.Count || len(out.Tags) != 2 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestKV_MissingKeyReadsAbsent(t *testing.T) {
	kv := setupTestKV(t)

	var out kvPayload
	if kv.Get(context.Background(), "nope", &out) {
		t.Error("expected absence for missing key")
	}
}

func TestKV_CorruptJSONReadsAbsent(t *testing.T) {
	s := setupTestStorage(t)
	kv := NewKV(s, nil)
	ctx := context.Background()

	// Write garbage through the raw storage layer, below the adapter.
	if err := s.SetRecord(ctx, "corrupt", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var out kvPayload
	if kv.Get(ctx, "corrupt", &out) {
		t.Error("corrupt JSON should read as absent, not error")
	}
}

func TestKV_Remove(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	kv.Set(ctx, "k", kvPayload{Name: "x"})
	kv.Remove(ctx, "k")

	var out kvPayload
	if kv.Get(ctx, "k", &out) {
		t.Error("expected absence after remove")
	}

	// Removing an absent key must be a silent no-op.
	kv.Remove(ctx, "k")
}
