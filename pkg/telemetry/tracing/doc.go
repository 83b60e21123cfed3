// Package tracing provides OpenTelemetry distributed tracing for javaparse.
//
// # Overview
//
// The tracing package implements W3C Trace Context propagation, span
// creation, and trace export over OTLP/gRPC. It opens one span per
// Parse/ParseFile/Reparse call, with minimal overhead (<100µs per span).
//
// # Tracing a parse
//
// Each top-level parse operation opens a single span recording:
// - Operation name (always "Parse") and duration
// - Attributes (file path, session id, token/node counts, outcome)
// - Events (timestamped points such as validation or recovery)
// - Trace context (trace ID, span ID, sampling decision)
//
// # Trace Context Propagation
//
// The package implements W3C Trace Context (https://www.w3.org/TR/trace-context/)
// for propagating trace context across the serve-metrics HTTP boundary:
//
//	traceparent: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//	tracestate: congo=t61rcWkgMzE
//
// # Sampling Strategies
//
// Three sampling strategies are supported:
// - always: Sample all traces (development/debugging)
// - never: Sample no traces (tracing disabled)
// - ratio: Sample a percentage of traces (production)
//
// # Usage
//
//	// Initialize tracer
//	cfg := &config.TracingConfig{
//	 Enabled: true,
//	 Sampler: "ratio",
//	 SampleRatio: 0.1,
//	 Endpoint: "localhost:4317",
//	 ServiceName: "javaparse",
//	}
//	tracer, err := tracing.New(cfg)
//	if err != nil {
//	 log.Fatal(err)
//	}
//	defer tracer.Shutdown(context.Background())
//
//	// Create span
//	ctx, span := tracer.Start(ctx, "Parse")
//	defer span.End()
//
//	// Add attributes
//	tracing.SetFileAttributes(span, "Main.java")
//	tracing.SetTokenAttributes(span, 1500)
//	tracing.SetNodeAttributes(span, 220)
//
//	// Add event
//	span.AddEvent("validation_passed", trace.WithAttributes(
//	 attribute.Int("byte_length", len(source)),
//	))
//
// # Span Hierarchy
//
// Spans are flat: a Parser with a tracer attached opens one "Parse" span
// per parse and no child spans. ParseFiles opens no span of its own, and
// the per-file Parsers it builds have no tracer, so a ParseFiles batch
// emits no spans.
//
// # HTTP Integration
//
// Extract trace context from an incoming HTTP request:
//
//	ctx := tracing.Extract(r.Context(), r.Header)
//	ctx, span := tracer.Start(ctx, "handle_request")
//	defer span.End()
//
// Inject trace context into an outgoing HTTP request:
//
//	req, _ := http.NewRequestWithContext(ctx, "POST", url, body)
//	tracing.Inject(ctx, req.Header)
//
// # Performance
//
// The tracing package is designed for minimal overhead:
// - Span creation: <100µs per span
// - Context propagation: <10µs
// - Sampling decision: <1µs
// - When disabled: <1µs (noop span)
//
// # Trace Exporter
//
// A single OTLP/gRPC exporter is supported:
//
//	telemetry:
//	 tracing:
//	 endpoint: localhost:4317
//	 insecure: true
//
// # Attribute Helpers
//
// Common attributes can be set using helper functions:
//
//	// File and session attributes
//	tracing.SetFileAttributes(span, "Main.java")
//	tracing.SetSessionAttribute(span, sessionID)
//
//	// Token and node counts
//	tracing.SetTokenAttributes(span, tokens)
//	tracing.SetNodeAttributes(span, nodes)
//
//	// Outcome
//	tracing.SetOutcomeAttribute(span, "success")
//
//	// Error attributes
//	tracing.SetErrorAttributes(span, err, "lexer")
package tracing
