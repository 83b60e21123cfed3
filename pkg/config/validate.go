package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "security.max_source_bytes").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf(" - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateSecurity(&cfg.Security)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)
	errs = append(errs, validateTracing(&cfg.Tracing)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateSecurity(s *SecurityConfig) []FieldError {
	var errs []FieldError
	if s.MaxSourceBytes < 0 {
		errs = append(errs, FieldError{"security.max_source_bytes", "must not be negative"})
	}
	if s.MaxSourceChars < 0 {
		errs = append(errs, FieldError{"security.max_source_chars", "must not be negative"})
	}
	if s.MaxTokenCount < 0 {
		errs = append(errs, FieldError{"security.max_token_count", "must not be negative"})
	}
	if s.MaxRecursionDepth <= 0 {
		errs = append(errs, FieldError{"security.max_recursion_depth", "must be positive"})
	}
	if s.ParseTimeout < 0 {
		errs = append(errs, FieldError{"security.parse_timeout", "must not be negative"})
	}
	if s.TimeoutCheckEvery <= 0 {
		errs = append(errs, FieldError{"security.timeout_check_every", "must be positive"})
	}
	if s.DepthCheckEvery <= 0 {
		errs = append(errs, FieldError{"security.depth_check_every", "must be positive"})
	}
	return errs
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
var validLogFormats = map[string]bool{"json": true, "text": true, "console": true}

func validateLogging(l *LoggingConfig) []FieldError {
	var errs []FieldError
	if l.Level != "" && !validLogLevels[l.Level] {
		errs = append(errs, FieldError{"logging.level", fmt.Sprintf("invalid level %q: must be debug, info, warn, or error", l.Level)})
	}
	if l.Format != "" && !validLogFormats[l.Format] {
		errs = append(errs, FieldError{"logging.format", fmt.Sprintf("invalid format %q: must be json, text, or console", l.Format)})
	}
	return errs
}

func validateMetrics(m *MetricsConfig) []FieldError {
	var errs []FieldError
	if m.Port < 0 || m.Port > 65535 {
		errs = append(errs, FieldError{"metrics.port", "must be between 0 and 65535"})
	}
	return errs
}

var validSamplers = map[string]bool{"always": true, "never": true, "ratio": true}

func validateTracing(t *TracingConfig) []FieldError {
	var errs []FieldError
	if t.Sampler != "" && !validSamplers[t.Sampler] {
		errs = append(errs, FieldError{"tracing.sampler", fmt.Sprintf("invalid sampler %q: must be always, never, or ratio", t.Sampler)})
	}
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		errs = append(errs, FieldError{"tracing.sample_ratio", "must be between 0.0 and 1.0"})
	}
	if t.Enabled && t.Endpoint == "" {
		errs = append(errs, FieldError{"tracing.endpoint", "required when tracing is enabled"})
	}
	return errs
}

func validateHistory(h *HistoryConfig) []FieldError {
	var errs []FieldError
	if h.Enabled && h.DBPath == "" {
		errs = append(errs, FieldError{"history.db_path", "required when history is enabled"})
	}
	if h.RetentionDays < 0 {
		errs = append(errs, FieldError{"history.retention_days", "must not be negative"})
	}
	return errs
}

func validateWatch(w *WatchConfig) []FieldError {
	var errs []FieldError
	if w.Enabled && len(w.Directories) == 0 {
		errs = append(errs, FieldError{"watch.directories", "at least one directory is required when watch is enabled"})
	}
	if w.Debounce < 0 {
		errs = append(errs, FieldError{"watch.debounce", "must not be negative"})
	}
	return errs
}
