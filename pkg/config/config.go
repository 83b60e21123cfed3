package config

import "time"

// Config is the root configuration structure for the javaparse process:
// the security bounds the parser core enforces plus
// the ambient logging/metrics/tracing/history/watch settings that sit
// around it.
type Config struct {
	// Security contains the resource bounds enforced by pkg/javaparse/security
	// during every parse.
	Security SecurityConfig `yaml:"security"`

	// Logging contains structured-logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics exposition configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed-tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`

	// History contains parse-history persistence and retention configuration.
	History HistoryConfig `yaml:"history"`

	// Watch contains directory-watch configuration for incremental reparse.
	Watch WatchConfig `yaml:"watch"`
}

// SecurityConfig mirrors pkg/javaparse/security.Config so a process can
// load the parser's resource bounds from YAML rather than hardcoding them.
type SecurityConfig struct {
	// MaxSourceBytes rejects input larger than this many bytes.
	// Default: 52428800 (50MB)
	MaxSourceBytes int64 `yaml:"max_source_bytes"`

	// MaxSourceChars rejects decoded text longer than this many runes.
	// Default: 10000000
	MaxSourceChars int64 `yaml:"max_source_chars"`

	// MaxTokenCount rejects a source that lexes to more tokens than this.
	// Default: 5000000
	MaxTokenCount int `yaml:"max_token_count"`

	// MaxRecursionDepth aborts a parse past this many nested productions.
	// Default: 1000
	MaxRecursionDepth int `yaml:"max_recursion_depth"`

	// ParseTimeout aborts a parse after this wall-clock budget.
	// Default: 30s
	ParseTimeout time.Duration `yaml:"parse_timeout"`

	// TimeoutCheckEvery re-checks the deadline every N token consumptions.
	// Default: 100
	TimeoutCheckEvery int `yaml:"timeout_check_every"`

	// DepthCheckEvery is validated and copied into security.Config, but
	// security.Guard does not read it: the deadline is re-checked on every
	// recursion-depth entry whatever its value.
	// Default: 1
	DepthCheckEvery int `yaml:"depth_check_every"`
}

// LoggingConfig contains logging configuration, consumed by
// pkg/telemetry/logging.New.
type LoggingConfig struct {
	// Level is the minimum log level to emit: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format: "json", "text", "console".
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration, consumed by
// pkg/telemetry/metrics.NewCollector and cmd/javaparse's "serve-metrics" subcommand.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path metrics are exposed on.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Port is the port "serve-metrics" listens on.
	// Default: 9090
	Port int `yaml:"port"`

	// Namespace is the metric name prefix.
	// Default: "javaparse"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "core"
	Subsystem string `yaml:"subsystem"`
}

// TracingConfig contains OpenTelemetry tracing configuration, consumed by
// pkg/telemetry/tracing.New.
type TracingConfig struct {
	// Enabled controls whether spans are exported; when false, tracing.New
	// returns a noop tracer.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy: "always", "never", "ratio".
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0), used
	// when Sampler is "ratio".
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP collector endpoint.
	// Example: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS for the OTLP connection.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// ServiceName is the service name attached to every span.
	// Default: "javaparse"
	ServiceName string `yaml:"service_name"`
}

// HistoryConfig contains parse-history persistence configuration,
// consumed by pkg/history.
type HistoryConfig struct {
	// Enabled controls whether each Parse call is recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// DBPath is the sqlite database file parse history is written to.
	// Default: "javaparse-history.db"
	DBPath string `yaml:"db_path"`

	// RetentionDays is how long a history row is kept before the periodic
	// retention sweep deletes it. 0 means keep forever.
	// Default: 30
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for the retention sweep.
	// Default: "0 3 * * *" (daily at 3 AM)
	PruneSchedule string `yaml:"prune_schedule"`
}

// WatchConfig contains directory-watch configuration, consumed by
// pkg/watch.
type WatchConfig struct {
	// Enabled controls whether "javaparse watch" is usable.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Directories lists the directories watched for ".java" file changes.
	Directories []string `yaml:"directories"`

	// Debounce coalesces rapid successive writes to the same file before
	// triggering a reparse.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce"`
}
