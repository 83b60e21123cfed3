// Package telemetry groups javaparse's observability subpackages.
//
// # Overview
//
// Structured logging, Prometheus metrics, and OpenTelemetry tracing each
// live in their own subpackage and are constructed independently from
// the corresponding Config section, rather than through a shared
// facade:
//
// - logging: structured logging with secret redaction
// - metrics: Prometheus metrics collection
// - tracing: OpenTelemetry distributed tracing
// - health: liveness/readiness/version HTTP endpoints for long-running daemons
//
// # Usage
//
//	cfg := config.GetConfig()
//
//	logger, _ := logging.New(logging.Config{
//		Level: cfg.Logging.Level,
//		Format: cfg.Logging.Format,
//		RedactPII: true,
//	})
//	defer logger.Shutdown()
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//
//	tracer, _ := tracing.New(&cfg.Tracing)
//	ctx, span := tracer.Start(ctx, "Parse")
//	defer span.End()
//
//	start := time.Now()
//	result := p.Parse()
//	collector.RecordParse(statusOf(result), time.Since(start).Seconds(), tokenCount, nodeCount)
//	logger.InfoContext(ctx, "parse completed", "duration_ms", time.Since(start).Milliseconds())
//
// # Secret redaction
//
// logging.Redactor scrubs secrets (API keys, tokens, credentials) out of
// log fields so a parse failure that quotes the offending Java source
// line doesn't leak a hardcoded credential verbatim into logs:
//
// - API keys: sk-abc123 → sk-***
// - Emails: user@example.com → removed (replaced with an empty string)
// - Bearer tokens: Bearer abc123 → Bearer ***
//
// Custom redaction patterns can be configured via logging.Config.RedactPatterns.
package telemetry
