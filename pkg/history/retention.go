package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/javalang/javaparse/pkg/config"
)

// Pruner enforces HistoryConfig.RetentionDays on a Store, on a cron
// schedule.
type Pruner struct {
	store *Store
	cfg config.HistoryConfig

	mu sync.Mutex
	cron *cron.Cron
	running bool
	logger *slog.Logger
}

// NewPruner creates a Pruner. It does not start the schedule; call Start.
func NewPruner(store *Store, cfg config.HistoryConfig) *Pruner {
	return &Pruner{
		store: store,
		cfg: cfg,
		cron: cron.New(),
		logger: slog.Default().With("component", "history.retention"),
	}
}

// Prune deletes entries older than cfg.RetentionDays. RetentionDays <= 0
// means keep forever, so Prune is a no-op.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	if p.cfg.RetentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -p.cfg.RetentionDays)
	deleted, err := p.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, NewRetentionError(p.cfg.RetentionDays, err)
	}
	if deleted > 0 {
		p.logger.Info("pruned parse history", "deleted_count", deleted, "retention_days", p.cfg.RetentionDays)
	} else {
		p.logger.Debug("no parse history pruned", "retention_days", p.cfg.RetentionDays)
	}
	return deleted, nil
}

// Start begins the scheduled pruning based on cfg.PruneSchedule. If the
// schedule is empty, Start does nothing. The scheduler stops itself when
// ctx is canceled.
func (p *Pruner) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.PruneSchedule == "" {
		p.logger.Info("prune schedule not configured, skipping retention scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(p.cfg.PruneSchedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", p.cfg.PruneSchedule, err)
	}

	if _, err := p.cron.AddFunc(p.cfg.PruneSchedule, func() {
		if _, err := p.Prune(ctx); err != nil {
			p.logger.Error("scheduled history pruning failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule history pruning: %w", err)
	}

	p.cron.Start()
	p.running = true
	p.logger.Info("history retention scheduler started",
		"schedule", p.cfg.PruneSchedule, "retention_days", p.cfg.RetentionDays)

	go func() {
		<-ctx.Done()
		p.Stop()
	}()

	return nil
}

// Stop stops the scheduler, waiting for any in-flight pruning to finish.
func (p *Pruner) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron != nil && p.running {
		stopped := p.cron.Stop()
		<-stopped.Done()
		p.running = false
		p.logger.Info("history retention scheduler stopped")
	}
}

// NextRun returns the time of the next scheduled prune, or nil if the
// scheduler is not running.
func (p *Pruner) NextRun() *time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron == nil || !p.running {
		return nil
	}
	entries := p.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
