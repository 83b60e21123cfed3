// Package watch reparses Java sources as they change on disk. See doc.go
// for usage.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/javalang/javaparse/pkg/config"
	"github.com/javalang/javaparse/pkg/javaparse"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/security"
	"github.com/javalang/javaparse/pkg/telemetry/logging"
	"github.com/javalang/javaparse/pkg/telemetry/metrics"
)

// Watcher watches a set of directories for ".java" file changes and
// reparses each changed file, debouncing rapid successive writes to the
// same file. A zero-value Watcher is not usable; construct one with New.
type Watcher struct {
	cfg config.WatchConfig
	security security.Config
	logger *logging.Logger
	metrics *metrics.Collector

	fsWatcher *fsnotify.Watcher

	mu sync.Mutex
	parsers map[string]*javaparse.Parser
	debouncers map[string]*debouncer
	running bool
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a Watcher. Logging and metrics are optional.
func New(cfg config.WatchConfig, secCfg security.Config, logger *logging.Logger, collector *metrics.Collector) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		cfg: cfg,
		security: secCfg,
		logger: logger,
		metrics: collector,
		fsWatcher: fsWatcher,
		parsers: make(map[string]*javaparse.Parser),
		debouncers: make(map[string]*debouncer),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}, nil
}

// Watch adds every directory in cfg.Directories (recursively) to the
// watcher, parses every ".java" file already present, and then blocks,
// reparsing files as fsnotify reports writes, until ctx is canceled or
// Stop is called.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watch: already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	filesWatched := 0
	for _, dir := range w.cfg.Directories {
		n, err := w.addDirectory(dir)
		if err != nil {
			return fmt.Errorf("watch: adding directory %q: %w", dir, err)
		}
		filesWatched += n
	}
	if w.metrics != nil {
		w.metrics.UpdateFilesWatched(filesWatched)
	}

	if w.logger != nil {
		w.logger.Info("watch started", "directories", w.cfg.Directories, "files_watched", filesWatched)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify events channel closed")
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify errors channel closed")
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

// Stop stops the watcher and waits for the watch loop to return.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.mu.Lock()
	for _, d := range w.debouncers {
		d.stop()
	}
	w.mu.Unlock()

	return w.fsWatcher.Close()
}

func (w *Watcher) addDirectory(dir string) (int, error) {
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
				return filepath.SkipDir
			}
			return w.fsWatcher.Add(path)
		}
		if strings.HasSuffix(path, ".java") {
			if err := w.parseInitial(path); err != nil {
				if w.logger != nil {
					w.logger.Warn("initial parse failed", "path", path, "error", err)
				}
			}
			count++
		}
		return nil
	})
	return count, err
}

func (w *Watcher) parseInitial(path string) error {
	p := javaparse.NewParser(w.security).WithLogger(w.logger).WithMetrics(w.metrics)
	_, err := p.Parse(path)

	w.mu.Lock()
	w.parsers[path] = p
	w.mu.Unlock()
	return err
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".java") {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	w.mu.Lock()
	d, ok := w.debouncers[event.Name]
	if !ok {
		d = newDebouncer(w.cfg.Debounce)
		w.debouncers[event.Name] = d
	}
	if w.metrics != nil {
		w.metrics.UpdateWatchQueueDepth(len(w.debouncers))
	}
	w.mu.Unlock()

	path := event.Name
	d.trigger(func() {
		w.reparse(path)
	})
}

func (w *Watcher) reparse(path string) {
	w.mu.Lock()
	p, ok := w.parsers[path]
	w.mu.Unlock()

	if !ok {
		p = javaparse.NewParser(w.security).WithLogger(w.logger).WithMetrics(w.metrics)
		w.mu.Lock()
		w.parsers[path] = p
		w.mu.Unlock()
		if _, err := p.Parse(path); err != nil {
			w.recordReparse("failure")
			return
		}
		w.recordReparse("success")
		return
	}

	newContent, err := os.ReadFile(path)
	if err != nil {
		w.recordReparse("failure")
		return
	}

	_, err = p.Reparse(ast.EditRange{
		StartOffset: 0,
		OldLength: p.SourceLength(),
		NewLength: len(newContent),
		NewText: string(newContent),
	})
	if err != nil {
		w.recordReparse("failure")
		return
	}
	w.recordReparse("success")
}

func (w *Watcher) recordReparse(status string) {
	if w.metrics != nil {
		w.metrics.RecordReparse(status)
	}
}

// debouncer coalesces rapid successive triggers for a single file into
// one callback invocation after interval of quiet.
type debouncer struct {
	interval time.Duration
	mu sync.Mutex
	timer *time.Timer
	stopCh chan struct{}
	stopped bool
}

func newDebouncer(interval time.Duration) *debouncer {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &debouncer{interval: interval, stopCh: make(chan struct{})}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
			callback()
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	close(d.stopCh)
	if d.timer != nil {
		d.timer.Stop()
	}
}
