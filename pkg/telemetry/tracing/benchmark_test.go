package tracing

import (
	"context"
	"net/http"
	"testing"

	"github.com/javalang/javaparse/pkg/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BenchmarkTracer_Start_Disabled benchmarks span creation with disabled tracing
// Target: <1µs (noop overhead)
func BenchmarkTracer_Start_Disabled(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, span := tracer.Start(ctx, "Parse")
		span.End()
	}
}

// BenchmarkTracer_Start_Enabled benchmarks span creation with enabled tracing
// Target: <100µs per span
func BenchmarkTracer_Start_Enabled(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     true,
		Sampler:     "always",
		SampleRatio: 1.0,
		Endpoint:    "localhost:4317",
		ServiceName: "test-service",
		Insecure:    true,
	})
	if err != nil {
		b.Skip("OTLP endpoint not available, skipping benchmark")
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, span := tracer.Start(ctx, "Parse")
		span.End()
	}
}

// BenchmarkTracer_Start_WithAttributes benchmarks span creation with attributes
// Target: <100µs per span
func BenchmarkTracer_Start_WithAttributes(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, span := tracer.Start(ctx, "Parse",
			trace.WithAttributes(
				attribute.String(AttrFile, "Main.java"),
				attribute.Int(AttrTokensTotal, 1500),
				attribute.Int(AttrNodesTotal, 220),
			),
		)
		span.End()
	}
}

// BenchmarkTracer_NestedSpans benchmarks nested span creation
// Target: <200µs for parent + child (100µs each)
func BenchmarkTracer_NestedSpans(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ctx, parentSpan := tracer.Start(ctx, "ParseFiles")
		_, childSpan := tracer.Start(ctx, "Parse")
		childSpan.End()
		parentSpan.End()
	}
}

// BenchmarkSetFileAttributes benchmarks setting the source file attribute
// Target: <10µs
func BenchmarkSetFileAttributes(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		SetFileAttributes(span, "src/main/java/Main.java")
	}
}

// BenchmarkSetSessionAttribute benchmarks setting the session id attribute
// Target: <10µs
func BenchmarkSetSessionAttribute(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		SetSessionAttribute(span, "sess-123")
	}
}

// BenchmarkSetTokenAndNodeAttributes benchmarks setting token and node counts
// Target: <10µs
func BenchmarkSetTokenAndNodeAttributes(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		SetTokenAttributes(span, 1500)
		SetNodeAttributes(span, 220)
	}
}

// BenchmarkAttributeBuilder benchmarks the fluent attribute builder
// Target: <20µs
func BenchmarkAttributeBuilder(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		builder := NewAttributeBuilder().
			WithFile("Main.java").
			WithSession("sess-123").
			WithTokensAndNodes(1500, 220).
			WithOutcome("success")
		builder.Apply(span)
	}
}

// BenchmarkExtract benchmarks trace context extraction
// Target: <10µs
func BenchmarkExtract(b *testing.B) {
	headers := http.Header{}
	headers.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Extract(ctx, headers)
	}
}

// BenchmarkInject benchmarks trace context injection
// Target: <10µs
func BenchmarkInject(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		headers := http.Header{}
		Inject(ctx, headers)
	}
}

// BenchmarkValidateTraceParent benchmarks traceparent validation
// Target: <1µs
func BenchmarkValidateTraceParent(b *testing.B) {
	traceparent := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = ValidateTraceParent(traceparent)
	}
}

// BenchmarkParseTraceParent benchmarks traceparent parsing
// Target: <1µs
func BenchmarkParseTraceParent(b *testing.B) {
	traceparent := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _, _, _, _ = ParseTraceParent(traceparent)
	}
}

// BenchmarkIsSampledFromTraceParent benchmarks sampling flag check
// Target: <1µs
func BenchmarkIsSampledFromTraceParent(b *testing.B) {
	traceparent := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = IsSampledFromTraceParent(traceparent)
	}
}

// BenchmarkSpanFromContext benchmarks retrieving span from context
// Target: <1µs
func BenchmarkSpanFromContext(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = SpanFromContext(ctx)
	}
}

// BenchmarkTraceID benchmarks trace ID extraction
// Target: <1µs
func BenchmarkTraceID(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = TraceID(ctx)
	}
}

// BenchmarkSetError benchmarks setting error on span
// Target: <10µs
func BenchmarkSetError(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "Parse")
	defer span.End()

	testErr := context.DeadlineExceeded

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		SetError(span, testErr)
	}
}

// BenchmarkCreateSampler benchmarks sampler creation
// Target: <1µs
func BenchmarkCreateSampler(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = createSampler("ratio", 0.1)
	}
}

// BenchmarkFullParseTrace benchmarks a complete ParseFiles trace scenario:
// extracting an incoming trace context, opening a parent span for the
// batch and a child span per file, and injecting the result back out.
// Target: <100µs total
func BenchmarkFullParseTrace(b *testing.B) {
	tracer, err := New(&config.TracingConfig{
		Enabled:     false,
		ServiceName: "test-service",
	})
	if err != nil {
		b.Fatalf("Failed to create tracer: %v", err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	headers := http.Header{}
	headers.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		// Extract context from headers
		ctx := Extract(context.Background(), headers)

		// Create batch span
		ctx, batchSpan := tracer.Start(ctx, "ParseFiles")
		SetSessionAttribute(batchSpan, "sess-123")

		// Create per-file parse span
		_, fileSpan := tracer.Start(ctx, "Parse")
		SetFileAttributes(fileSpan, "Main.java")
		SetTokenAttributes(fileSpan, 1500)
		SetNodeAttributes(fileSpan, 220)
		SetOutcomeAttribute(fileSpan, "success")
		fileSpan.End()

		// End batch span
		batchSpan.End()

		// Inject context into response headers
		responseHeaders := http.Header{}
		Inject(ctx, responseHeaders)
	}
}
