package kv

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "club.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get(ctx, "cricket_data_v2"); err != nil || ok {
		t.Fatalf("expected absent key before set, ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "cricket_data_v2", `{"seasons":[2024]}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "cricket_data_v2", `{"seasons":[2024,2025]}`); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	value, ok, err := store.Get(ctx, "cricket_data_v2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected key present after set")
	}
	if value != `{"seasons":[2024,2025]}` {
		t.Fatalf("unexpected value: %q", value)
	}
}
