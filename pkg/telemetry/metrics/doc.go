// Package metrics provides Prometheus metrics collection for javaparse.
//
// # Overview
//
// The metrics package implements the spec's optional metrics surface:
// parse counts and durations, tokens and nodes produced, parse errors by
// stage, files processed, and the fsnotify-driven watch/reparse loop.
// Collection is opt-in via MetricsConfig.Enabled; every recording method
// is a no-op when it is false.
//
// # Metrics Categories
//
// - Parse Metrics: parse count/duration by outcome, tokens, nodes,
// files processed, parse errors by stage, peak arena memory
// - Watch Metrics: files under watch, pending reparse queue depth,
// reparse outcome counts
//
// # Usage
//
//	collector := metrics.NewCollector(cfg, registry)
//
//	start := time.Now()
//	result := p.Parse()
//	collector.RecordParse(statusOf(result), time.Since(start).Seconds(), tokenCount, nodeCount)
//
//	if !result.IsSuccess() {
//		for _, e := range result.Errors().Errors {
//			collector.RecordParseError(string(e.Type))
//		}
//	}
//
// # Prometheus Endpoint
//
// All metrics are exposed in standard Prometheus exposition format:
//
//	# HELP javaparse_core_parse_total Total number of parse attempts by outcome.
//	# TYPE javaparse_core_parse_total counter
//	javaparse_core_parse_total{status="success"} 1234
//
// cmd/javaparse's "serve-metrics" subcommand mounts Collector.Handler()
// at MetricsConfig.Path on MetricsConfig.Port.
package metrics
