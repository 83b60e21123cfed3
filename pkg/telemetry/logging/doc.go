// Package logging provides structured logging with PII redaction.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
// - Structured logging with JSON, text, and console formats
// - Automatic PII redaction (API keys, emails, SSN, etc.)
// - Context-aware logging with session IDs, file paths, and trace metadata
// - Synchronous writes straight to the configured writer
// - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	// Create a logger
//	logger, err := logging.New(logging.Config{
//	 Level: "info",
//	 Format: "json",
//	 RedactPII: true,
//	})
//
//	// Log structured data
//	logger.Info("Parse completed",
//	 "session_id", "sess-123",
//	 "api_key", "sk-abc123", // Automatically redacted
//	 "duration_ms", 1234,
//	)
//
//	// Create context-aware logger
//	ctx := logging.WithSessionID(ctx, "sess-123")
//	ctxLogger := logger.WithContext(ctx)
//	ctxLogger.Info("Parsing") // Includes session_id automatically
//
// # PII Redaction
//
// PII is automatically redacted from log fields when RedactPII is enabled:
//
// - API keys: sk-abc123xyz → sk-***
// - Emails: user@example.com → removed (replaced with an empty string)
// - SSN: 123-45-6789 → ***-**-****
// - IP addresses: 192.168.1.100 → 192.*.*.*
// - Credit cards: 4111-1111-1111-1111 → ****-****-****-****
//
// # Performance
//
// Each record is written synchronously: LogBuffer.Write passes it
// straight to the configured writer. Nothing is queued, so no record is
// ever dropped and DroppedCount stays 0.
// - <1µs when log level filters out the message
package logging
