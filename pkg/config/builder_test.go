package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with sensible defaults for testing.
// The resulting configuration is valid and can be used immediately.
func NewTestConfig() *ConfigBuilder {
	var cfg Config
	ApplyDefaults(&cfg)
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithMaxSourceBytes sets the security max source bytes bound.
func (b *ConfigBuilder) WithMaxSourceBytes(n int64) *ConfigBuilder {
	b.cfg.Security.MaxSourceBytes = n
	return b
}

// WithParseTimeout sets the security parse timeout.
func (b *ConfigBuilder) WithParseTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Security.ParseTimeout = d
	return b
}

// WithMaxRecursionDepth sets the security max recursion depth.
func (b *ConfigBuilder) WithMaxRecursionDepth(n int) *ConfigBuilder {
	b.cfg.Security.MaxRecursionDepth = n
	return b
}

// WithLoggingLevel sets the logging level.
func (b *ConfigBuilder) WithLoggingLevel(level string) *ConfigBuilder {
	b.cfg.Logging.Level = level
	return b
}

// WithLoggingFormat sets the logging format.
func (b *ConfigBuilder) WithLoggingFormat(format string) *ConfigBuilder {
	b.cfg.Logging.Format = format
	return b
}

// WithMetricsEnabled sets whether metrics are enabled.
func (b *ConfigBuilder) WithMetricsEnabled(enabled bool) *ConfigBuilder {
	b.cfg.Metrics.Enabled = enabled
	return b
}

// WithMetricsPort sets the metrics listen port.
func (b *ConfigBuilder) WithMetricsPort(port int) *ConfigBuilder {
	b.cfg.Metrics.Port = port
	return b
}

// WithTracingEnabled sets whether tracing is enabled, along with its endpoint.
func (b *ConfigBuilder) WithTracingEnabled(enabled bool, endpoint string) *ConfigBuilder {
	b.cfg.Tracing.Enabled = enabled
	b.cfg.Tracing.Endpoint = endpoint
	if b.cfg.Tracing.SampleRatio == 0 {
		b.cfg.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	return b
}

// WithHistoryEnabled sets whether parse history is recorded, along with its
// database path.
func (b *ConfigBuilder) WithHistoryEnabled(enabled bool, dbPath string) *ConfigBuilder {
	b.cfg.History.Enabled = enabled
	b.cfg.History.DBPath = dbPath
	return b
}

// WithWatch sets the watch directories, enabling watch mode.
func (b *ConfigBuilder) WithWatch(dirs ...string) *ConfigBuilder {
	b.cfg.Watch.Enabled = true
	b.cfg.Watch.Directories = dirs
	return b
}

// MinimalConfig returns a minimal valid configuration for testing.
// This is useful for tests that don't care about most configuration values.
func MinimalConfig() *Config {
	return NewTestConfig().Build()
}
