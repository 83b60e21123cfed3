package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := NewTestConfig().
		WithMaxSourceBytes(1024).
		WithParseTimeout(5 * time.Second).
		WithLoggingLevel("debug").
		WithMetricsEnabled(true).
		WithWatch("./src", "./test").
		Build()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal config: %v", err)
	}

	if decoded.Security.MaxSourceBytes != 1024 {
		t.Errorf("expected max_source_bytes 1024, got %d", decoded.Security.MaxSourceBytes)
	}
	if decoded.Security.ParseTimeout != 5*time.Second {
		t.Errorf("expected parse_timeout 5s, got %v", decoded.Security.ParseTimeout)
	}
	if decoded.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", decoded.Logging.Level)
	}
	if !decoded.Metrics.Enabled {
		t.Error("expected metrics enabled")
	}
	if len(decoded.Watch.Directories) != 2 {
		t.Errorf("expected 2 watch directories, got %d", len(decoded.Watch.Directories))
	}
}

func TestConfig_EmptyYAMLAppliesDefaults(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(``), &cfg); err != nil {
		t.Fatalf("failed to unmarshal empty config: %v", err)
	}
	ApplyDefaults(&cfg)

	if cfg.Security.MaxSourceBytes != DefaultMaxSourceBytes {
		t.Errorf("expected default max source bytes, got %d", cfg.Security.MaxSourceBytes)
	}
	if cfg.Logging.Level != DefaultLoggingLevel {
		t.Errorf("expected default logging level, got %q", cfg.Logging.Level)
	}
}
