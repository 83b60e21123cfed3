package metrics

import (
	"github.com/javalang/javaparse/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the orchestrator for every Prometheus metric javaparse
// exposes. It owns the registry and the per-concern metric groups, and
// gives callers (pkg/javaparse, pkg/watch, cmd/javaparse) a single
// narrow surface to record against.
//
// All recording methods are no-ops when the collector was built from a
// disabled MetricsConfig, so call sites never need their own enabled
// check.
type Collector struct {
	config *config.MetricsConfig
	registry *prometheus.Registry

	parse *ParseMetrics
	watch *WatchMetrics
}

// NewCollector creates a metrics collector wired to the given registry.
// If registry is nil, a fresh prometheus.Registry is used instead of the
// global default, so tests (and multiple Collector instances within one
// process) never collide on metric names.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "javaparse"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "core"
	}

	c := &Collector{
		config: cfg,
		registry: registry,
	}

	c.parse = NewParseMetrics(cfg, registry)
	c.watch = NewWatchMetrics(cfg, registry)

	return c
}

// RecordParse records the outcome of one Parse/ParseBytes/ParseFile call.
func (c *Collector) RecordParse(status string, durationSeconds float64, tokens, nodes int) {
	if !c.config.Enabled {
		return
	}
	c.parse.RecordParse(status, durationSeconds, tokens, nodes)
}

// RecordFileProcessed increments the count of source files parsed.
// Parser.parse calls it once per successful parse; failed parses are not
// counted.
func (c *Collector) RecordFileProcessed() {
	if !c.config.Enabled {
		return
	}
	c.parse.filesProcessedTotal.Inc()
}

// RecordParseError records a parse failure by the stage that produced it
// ("lexer", "parser", "arena", "validation"), matching errors.ErrorType.
func (c *Collector) RecordParseError(errorType string) {
	if !c.config.Enabled {
		return
	}
	c.parse.RecordError(errorType)
}

// RecordRecoveredError records an error the parser recovered from
// instead of aborting. The parser has no recovery mode and nothing in the
// module calls this, so the counter stays at zero.
func (c *Collector) RecordRecoveredError() {
	if !c.config.Enabled {
		return
	}
	c.parse.recoveredErrorsTotal.Inc()
}

// UpdatePeakMemory records the high-water mark of arena memory used
// during a parse, in bytes.
func (c *Collector) UpdatePeakMemory(bytes uint64) {
	if !c.config.Enabled {
		return
	}
	c.parse.peakMemoryBytes.Set(float64(bytes))
}

// UpdateWatchQueueDepth reports how many pending file-change events are
// queued for reparse in pkg/watch.
func (c *Collector) UpdateWatchQueueDepth(depth int) {
	if !c.config.Enabled {
		return
	}
	c.watch.queueDepth.Set(float64(depth))
}

// RecordReparse records the outcome of one fsnotify-triggered Reparse
// call ("success" or "failure").
func (c *Collector) RecordReparse(status string) {
	if !c.config.Enabled {
		return
	}
	c.watch.RecordReparse(status)
}

// UpdateFilesWatched reports the current count of files under watch.
func (c *Collector) UpdateFilesWatched(n int) {
	if !c.config.Enabled {
		return
	}
	c.watch.filesWatched.Set(float64(n))
}

// Registry returns the Prometheus registry backing this collector, for
// mounting an HTTP handler or registering additional collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
