package metrics

import (
	"github.com/javalang/javaparse/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// WatchMetrics tracks pkg/watch's fsnotify-triggered reparse loop:
// how many files are under watch, how deep the pending-event queue is,
// and the outcome of each Reparse call.
type WatchMetrics struct {
	filesWatched prometheus.Gauge
	queueDepth prometheus.Gauge
	reparseTotal *prometheus.CounterVec
}

// NewWatchMetrics creates and registers the watch metric group.
func NewWatchMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *WatchMetrics {
	wm := &WatchMetrics{
		filesWatched: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name: "watch_files_watched",
				Help: "Current number of source files under watch.",
			},
		),
		queueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name: "watch_queue_depth",
				Help: "Current number of pending file-change events awaiting reparse.",
			},
		),
		reparseTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name: "watch_reparse_total",
				Help: "Total number of fsnotify-triggered Reparse calls by outcome.",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(wm.filesWatched, wm.queueDepth, wm.reparseTotal)

	return wm
}

// RecordReparse records the outcome of one Reparse call triggered by a
// watched file changing on disk.
func (wm *WatchMetrics) RecordReparse(status string) {
	wm.reparseTotal.WithLabelValues(status).Inc()
}
