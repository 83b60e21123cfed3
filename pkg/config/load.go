package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention JAVAPARSE_SECTION_FIELD (e.g., JAVAPARSE_SECURITY_MAX_SOURCE_BYTES).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format JAVAPARSE_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("JAVAPARSE_SECURITY_MAX_SOURCE_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Security.MaxSourceBytes = i
		}
	}
	if val := os.Getenv("JAVAPARSE_SECURITY_MAX_SOURCE_CHARS"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Security.MaxSourceChars = i
		}
	}
	if val := os.Getenv("JAVAPARSE_SECURITY_MAX_TOKEN_COUNT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Security.MaxTokenCount = i
		}
	}
	if val := os.Getenv("JAVAPARSE_SECURITY_MAX_RECURSION_DEPTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Security.MaxRecursionDepth = i
		}
	}
	if val := os.Getenv("JAVAPARSE_SECURITY_PARSE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Security.ParseTimeout = d
		}
	}

	if val := os.Getenv("JAVAPARSE_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("JAVAPARSE_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("JAVAPARSE_LOGGING_ADD_SOURCE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Logging.AddSource = b
		}
	}

	if val := os.Getenv("JAVAPARSE_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("JAVAPARSE_METRICS_PATH"); val != "" {
		cfg.Metrics.Path = val
	}
	if val := os.Getenv("JAVAPARSE_METRICS_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Metrics.Port = i
		}
	}

	if val := os.Getenv("JAVAPARSE_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Tracing.Enabled = b
		}
	}
	if val := os.Getenv("JAVAPARSE_TRACING_SAMPLER"); val != "" {
		cfg.Tracing.Sampler = val
	}
	if val := os.Getenv("JAVAPARSE_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Tracing.SampleRatio = f
		}
	}
	if val := os.Getenv("JAVAPARSE_TRACING_ENDPOINT"); val != "" {
		cfg.Tracing.Endpoint = val
	}
	if val := os.Getenv("JAVAPARSE_TRACING_INSECURE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Tracing.Insecure = b
		}
	}

	if val := os.Getenv("JAVAPARSE_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("JAVAPARSE_HISTORY_DB_PATH"); val != "" {
		cfg.History.DBPath = val
	}
	if val := os.Getenv("JAVAPARSE_HISTORY_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = i
		}
	}

	if val := os.Getenv("JAVAPARSE_WATCH_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Watch.Enabled = b
		}
	}
	if val := os.Getenv("JAVAPARSE_WATCH_DIRECTORIES"); val != "" {
		cfg.Watch.Directories = strings.Split(val, ",")
	}
	if val := os.Getenv("JAVAPARSE_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}
}
