package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javalang/javaparse/pkg/config"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewStore(config.HistoryConfig{DBPath: dbPath})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStore_Initialize(t *testing.T) {
	_, dbPath := newTestStore(t)
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestStore_RecordAndQuery(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	entries := []Entry{
		{ID: "a", Path: "A.java", Success: true, DurationMS: 5, Tokens: 10, Nodes: 3},
		{ID: "b", Path: "B.java", Success: false, ErrorMessage: "expected ';'"},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record(%s) error = %v", e.ID, err)
		}
	}

	got, err := store.Query(ctx, Filter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Query()) = %d, want 2", len(got))
	}
}

func TestStore_QueryFilterBySuccess(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Record(ctx, Entry{ID: "a", Path: "A.java", Success: true})
	store.Record(ctx, Entry{ID: "b", Path: "B.java", Success: false, ErrorMessage: "boom"})

	failureOnly := false
	got, err := store.Query(ctx, Filter{Success: &failureOnly})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("Query(Success=false) = %+v, want only entry b", got)
	}
}

func TestStore_Count(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		store.Record(ctx, Entry{ID: string(rune('a' + i)), Path: "A.java", Success: true})
	}

	count, err := store.Count(ctx, Filter{})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestStore_DeleteOlderThan(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	old := Entry{ID: "old", Path: "Old.java", Success: true, RecordedAt: time.Now().Add(-48 * time.Hour)}
	recent := Entry{ID: "new", Path: "New.java", Success: true, RecordedAt: time.Now()}
	store.Record(ctx, old)
	store.Record(ctx, recent)

	deleted, err := store.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteOlderThan() deleted = %d, want 1", deleted)
	}

	remaining, err := store.Query(ctx, Filter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "new" {
		t.Fatalf("remaining entries = %+v, want only %q", remaining, "new")
	}
}

func TestPruner_PruneRespectsRetentionDisabled(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Record(ctx, Entry{ID: "old", Path: "Old.java", Success: true, RecordedAt: time.Now().Add(-1000 * 24 * time.Hour)})

	pruner := NewPruner(store, config.HistoryConfig{RetentionDays: 0})
	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("Prune() with RetentionDays=0 deleted = %d, want 0", deleted)
	}
}

func TestPruner_Prune(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Record(ctx, Entry{ID: "old", Path: "Old.java", Success: true, RecordedAt: time.Now().Add(-60 * 24 * time.Hour)})
	store.Record(ctx, Entry{ID: "new", Path: "New.java", Success: true, RecordedAt: time.Now()})

	pruner := NewPruner(store, config.HistoryConfig{RetentionDays: 30})
	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() deleted = %d, want 1", deleted)
	}
}
