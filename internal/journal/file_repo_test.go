package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "mood_logs.json")

	repo, err := NewFileRepository(p)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	store := NewStore(repo)
	if _, err := store.Append(4, "walked outside", time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Append(2, "", time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Simulated restart: rehydrate a fresh store from the same file.
	repo2, err := NewFileRepository(p)
	if err != nil {
		t.Fatalf("reopen repo: %v", err)
	}
	restored := NewStore(repo2)

	before, after := store.All(), restored.All()
	if len(after) != len(before) {
		t.Fatalf("want %d entries after restart, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Timestamp != after[i].Timestamp ||
			before[i].Score != after[i].Score || before[i].Note != after[i].Note {
			t.Fatalf("entry %d changed across restart: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestFileRepositoryMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "mood_logs.json")
	repo, err := NewFileRepository(p)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	entries, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("want empty log, got %d entries", len(entries))
	}
}

func TestFileRepositoryCorruptPayload(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mood_logs.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	repo, err := NewFileRepository(p)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	store := NewStore(repo)
	if store.Len() != 0 {
		t.Fatalf("corrupt payload must yield an empty store, len=%d", store.Len())
	}

	// The store must remain usable after discarding the payload.
	if _, err := store.Append(3, "", time.Now()); err != nil {
		t.Fatalf("append after corrupt load: %v", err)
	}
}
