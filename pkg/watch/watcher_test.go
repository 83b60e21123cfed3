package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javalang/javaparse/pkg/config"
	"github.com/javalang/javaparse/pkg/javaparse/security"
)

func TestWatcher_ParsesExistingFilesOnStartup(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "A.java"), []byte("class A {}\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	w, err := New(config.WatchConfig{Directories: []string{dir}, Debounce: 50 * time.Millisecond}, security.Default(), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	w.mu.Lock()
	_, ok := w.parsers[filepath.Join(dir, "A.java")]
	w.mu.Unlock()
	if !ok {
		t.Error("expected A.java to have been parsed on startup")
	}
}

func TestWatcher_ReparsesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	if err := os.WriteFile(path, []byte("class A {}\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	w, err := New(config.WatchConfig{Directories: []string{dir}, Debounce: 30 * time.Millisecond}, security.Default(), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Watch(ctx)

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("class A { void m() {} }\n"), 0o644); err != nil {
		t.Fatalf("rewriting fixture: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	w.mu.Lock()
	p, ok := w.parsers[path]
	w.mu.Unlock()
	if !ok {
		t.Fatal("expected A.java to still be tracked after rewrite")
	}
	if p.SourceLength() == 0 {
		t.Error("expected parser to retain reparsed source")
	}
}

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()

	calls := 0
	for i := 0; i < 5; i++ {
		d.trigger(func() { calls++ })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (rapid triggers should coalesce)", calls)
	}
}
