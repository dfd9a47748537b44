package storage

import (
	"context"
	"encoding/json"
	"log/slog"
)

// KV is the JSON key-value adapter the stores persist through. Its
// contract is deliberate: no method ever reports failure. Storage I/O
// and parse errors are logged and degrade to "acts as if empty" so
// callers never need a failure path for persistence hiccups.
type KV struct {
	storage *Storage
	logger  *slog.Logger
}

// NewKV wraps a Storage. A nil logger falls back to slog.Default.
func NewKV(s *Storage, logger *slog.Logger) *KV {
	if logger == nil {
		logger = slog.Default()
	}
	return &KV{storage: s, logger: logger.With("module", "kv")}
}

// Set serializes value to JSON and writes it under key.
func (kv *KV) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		kv.logger.Error("storage set: marshal failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := kv.storage.SetRecord(ctx, key, string(data)); err != nil {
		kv.logger.Error("storage set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Get reads the value under key into out and reports whether a valid
// value was present. Missing keys and corrupt JSON both read as absent.
func (kv *KV) Get(ctx context.Context, key string, out any) bool {
	rec, err := kv.storage.GetRecord(ctx, key)
	if err != nil {
		kv.logger.Error("storage get failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	if rec == nil {
		return false
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		kv.logger.Error("storage get: unmarshal failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

// Remove deletes the key.
func (kv *KV) Remove(ctx context.Context, key string) {
	if err := kv.storage.DeleteRecord(ctx, key); err != nil {
		kv.logger.Error("storage remove failed", slog.String("key", key), slog.Any("error", err))
	}
}
