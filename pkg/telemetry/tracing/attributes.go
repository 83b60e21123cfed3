package tracing

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span Attribute Helpers
//
// These functions provide a convenient way to set common attributes on
// the single span each Parse/ParseFile call opens. They use semantic
// conventions where applicable and ensure consistent attribute naming
// across the codebase.
//
// Custom attribute keys use the "javaparse.*" namespace:
// - javaparse.file: source file path being parsed
// - javaparse.session_id: parse session identifier
// - javaparse.tokens.total: tokens produced by the lexer
// - javaparse.nodes.total: AST nodes allocated in the arena
// - javaparse.outcome: "success" or "failure"

// Common attribute keys used throughout the system.
const (
	// File and session attributes
	AttrFile = "javaparse.file"
	AttrSessionID = "javaparse.session_id"

	// Outcome attributes
	AttrOutcome = "javaparse.outcome"

	// Token and node attributes
	AttrTokensTotal = "javaparse.tokens.total"
	AttrNodesTotal = "javaparse.nodes.total"

	// Error attributes
	AttrErrorType = "javaparse.error.type"
	AttrErrorMessage = "error.message"

	// Performance attributes
	AttrDuration = "javaparse.duration_ms"
)

// SetFileAttributes sets the source file path attribute on a span.
//
// Example:
//
//	SetFileAttributes(span, "src/main/java/Main.java")
func SetFileAttributes(span trace.Span, path string) {
	if path == "" {
		return
	}
	span.SetAttributes(attribute.String(AttrFile, path))
}

// SetSessionAttribute sets the parse session identifier attribute on a span.
//
// Example:
//
//	SetSessionAttribute(span, "a1b2c3d4")
func SetSessionAttribute(span trace.Span, sessionID string) {
	if sessionID != "" {
		span.SetAttributes(attribute.String(AttrSessionID, sessionID))
	}
}

// SetTokenAttributes sets the total token count attribute on a span.
//
// Example:
//
//	SetTokenAttributes(span, 1520)
func SetTokenAttributes(span trace.Span, tokens int) {
	span.SetAttributes(attribute.Int(AttrTokensTotal, tokens))
}

// SetNodeAttributes sets the total AST node count attribute on a span.
//
// Example:
//
//	SetNodeAttributes(span, 340)
func SetNodeAttributes(span trace.Span, nodes int) {
	span.SetAttributes(attribute.Int(AttrNodesTotal, nodes))
}

// SetOutcomeAttribute sets the parse outcome attribute on a span
// ("success" or "failure").
//
// Example:
//
//	SetOutcomeAttribute(span, "success")
func SetOutcomeAttribute(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String(AttrOutcome, outcome))
}

// SetErrorAttributes sets error-related attributes on a span.
// This also records the error using span.RecordError() and sets the span status.
//
// Example:
//
//	SetErrorAttributes(span, err, "lexer")
func SetErrorAttributes(span trace.Span, err error, errorType string) {
	if err == nil {
		return
	}

	span.SetAttributes(
		attribute.Bool("error", true),
		attribute.String(AttrErrorType, errorType),
		attribute.String(AttrErrorMessage, err.Error()),
	)

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetDurationAttribute sets the duration attribute on a span.
// Duration is recorded in milliseconds.
//
// Example:
//
//	start := time.Now()
//	//... do work...
//	SetDurationAttribute(span, time.Since(start).Milliseconds())
func SetDurationAttribute(span trace.Span, durationMs int64) {
	span.SetAttributes(attribute.Int64(AttrDuration, durationMs))
}

// AddEvent adds a named event to the span with optional attributes.
// Events represent interesting points in the span's lifetime.
//
// Example:
//
//	AddEvent(span, "validation_passed",
//	 attribute.Int("byte_length", len(source)),
//	)
func AddEvent(span trace.Span, name string, attrs...attribute.KeyValue) {
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// RecordException records an exception event on the span.
// This is a convenience wrapper for errors that don't end the span.
//
// Example:
//
//	RecordException(span, err)
func RecordException(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
}

// AttributeBuilder provides a fluent interface for building span attributes.
type AttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewAttributeBuilder creates a new attribute builder.
func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{
		attrs: make([]attribute.KeyValue, 0, 8),
	}
}

// WithFile adds the source file path attribute.
func (ab *AttributeBuilder) WithFile(path string) *AttributeBuilder {
	if path != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrFile, path))
	}
	return ab
}

// WithSession adds the parse session identifier attribute.
func (ab *AttributeBuilder) WithSession(sessionID string) *AttributeBuilder {
	if sessionID != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrSessionID, sessionID))
	}
	return ab
}

// WithTokensAndNodes adds token and node count attributes.
func (ab *AttributeBuilder) WithTokensAndNodes(tokens, nodes int) *AttributeBuilder {
	ab.attrs = append(ab.attrs,
		attribute.Int(AttrTokensTotal, tokens),
		attribute.Int(AttrNodesTotal, nodes),
	)
	return ab
}

// WithOutcome adds the parse outcome attribute.
func (ab *AttributeBuilder) WithOutcome(outcome string) *AttributeBuilder {
	ab.attrs = append(ab.attrs, attribute.String(AttrOutcome, outcome))
	return ab
}

// WithCustom adds a custom attribute, inferring its OTel type from value.
func (ab *AttributeBuilder) WithCustom(key string, value interface{}) *AttributeBuilder {
	switch v := value.(type) {
	case string:
		ab.attrs = append(ab.attrs, attribute.String(key, v))
	case int:
		ab.attrs = append(ab.attrs, attribute.Int(key, v))
	case int64:
		ab.attrs = append(ab.attrs, attribute.Int64(key, v))
	case float64:
		ab.attrs = append(ab.attrs, attribute.Float64(key, v))
	case bool:
		ab.attrs = append(ab.attrs, attribute.Bool(key, v))
	default:
		ab.attrs = append(ab.attrs, attribute.String(key, fmt.Sprintf("%v", v)))
	}
	return ab
}

// Build returns the built attributes as a trace.SpanStartOption.
func (ab *AttributeBuilder) Build() trace.SpanStartOption {
	return trace.WithAttributes(ab.attrs...)
}

// Apply applies the attributes to a span.
func (ab *AttributeBuilder) Apply(span trace.Span) {
	span.SetAttributes(ab.attrs...)
}

// Attributes returns the raw attribute slice.
func (ab *AttributeBuilder) Attributes() []attribute.KeyValue {
	return ab.attrs
}
