// Package config provides configuration management for the javaparse
// process.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with comprehensive validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
// 1. From a YAML file only:
// cfg, err := config.LoadConfig("config.yaml")
//
// 2. From a YAML file with environment variable overrides:
// cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention JAVAPARSE_SECTION_FIELD.
// For example:
//
// - JAVAPARSE_SECURITY_MAX_SOURCE_BYTES overrides security.max_source_bytes
// - JAVAPARSE_LOGGING_LEVEL overrides logging.level
// - JAVAPARSE_WATCH_DIRECTORIES overrides watch.directories (comma-separated)
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
// 1. Default values (defined in defaults.go)
// 2. Values from YAML file
// 3. Environment variable overrides
// 4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("config.yaml"); err != nil {
//	 log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Security.MaxSourceBytes)
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation includes:
//
// - Range checks (e.g., recursion depth must be positive, ports 0-65535)
// - Enum checks (e.g., logging.level, tracing.sampler)
// - Logical validation (e.g., history requires a db_path when enabled)
//
// Validation errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	 - logging.level: invalid level "verbose": must be debug, info, warn, or error
//	 - history.db_path: required when history is enabled
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	security:
//	 max_source_bytes: 52428800
//	 max_recursion_depth: 1000
//	 parse_timeout: 30s
//
//	logging:
//	 level: "info"
//	 format: "json"
//
//	metrics:
//	 enabled: true
//	 port: 9090
//
//	watch:
//	 enabled: true
//	 directories: ["./src"]
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton pattern uses read-write
// locks to allow concurrent reads while protecting against concurrent writes during
// reload operations.
package config
