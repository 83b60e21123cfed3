// Package javaparse parses Java source text (through JDK 25 features)
// into a compact, arena-backed AST. See doc.go for the full package
// overview.
package javaparse

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
	"github.com/javalang/javaparse/pkg/javaparse/parser"
	"github.com/javalang/javaparse/pkg/javaparse/position"
	"github.com/javalang/javaparse/pkg/javaparse/security"
	"github.com/javalang/javaparse/pkg/telemetry/logging"
	"github.com/javalang/javaparse/pkg/telemetry/metrics"
	"github.com/javalang/javaparse/pkg/telemetry/tracing"
)

// Parser parses Java source text into Results. A zero-value Parser is
// not usable; construct one with NewParser. Unlike the stateless
// package-level Parse/ParseBytes functions, a Parser instance retains
// the last source it parsed, which Reparse needs to apply an edit.
//
// A Parser instance, its token vector and its arena are not shared
// across threads; parsing multiple files concurrently
// means using independent Parser instances, which is exactly what
// ParseFiles does internally.
type Parser struct {
	security security.Config
	logger *logging.Logger
	metrics *metrics.Collector
	tracer *tracing.Tracer

	source string
	filePath string
	arena *arena.Arena
	mapper *position.Mapper
	tokenCount int
}

// NewParser creates a Parser with the given security bounds. Logging,
// metrics and tracing are all optional and off by default; attach them
// with WithLogger/WithMetrics/WithTracer.
func NewParser(cfg security.Config) *Parser {
	return &Parser{security: cfg}
}

// WithLogger attaches a structured logger used for parse diagnostics.
func (p *Parser) WithLogger(l *logging.Logger) *Parser {
	p.logger = l
	return p
}

// WithMetrics attaches a Prometheus metrics collector.
func (p *Parser) WithMetrics(c *metrics.Collector) *Parser {
	p.metrics = c
	return p
}

// WithTracer attaches an OpenTelemetry tracer.
func (p *Parser) WithTracer(t *tracing.Tracer) *Parser {
	p.tracer = t
	return p
}

// Source returns the source text from the Parser's last successful
// Parse/ParseBytes/Reparse call, or "" if none has happened yet.
func (p *Parser) Source() string { return p.source }

// SourceLength returns len(p.Source()) in bytes, the OldLength a caller
// building a whole-file-replace EditRange for Reparse needs.
func (p *Parser) SourceLength() int { return len(p.source) }

// TokenCount returns the number of tokens lexed by the Parser's last
// successful Parse/ParseBytes/Reparse call, or 0 if none has happened yet.
func (p *Parser) TokenCount() int { return p.tokenCount }

// Parse reads and parses the Java source file at path.
func (p *Parser) Parse(path string) (Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("javaparse: reading %s: %w", path, err)
	}
	return p.parse(context.Background(), raw, path)
}

// ParseBytes parses in-memory Java source text. filePath is used only
// for diagnostics (it need not exist on disk); pass "" for anonymous
// sources.
func (p *Parser) ParseBytes(data []byte, filePath string) (Result, error) {
	return p.parse(context.Background(), data, filePath)
}

// Reparse applies edit to the source from the Parser's last Parse/
// ParseBytes call and reparses it. The current implementation performs
// a full reparse after resetting the arena — the EditRange shape
// exists so a future incremental reparse does not change this
// signature.
func (p *Parser) Reparse(edit ast.EditRange) (Result, error) {
	if p.source == "" && p.arena == nil {
		return Result{}, fmt.Errorf("javaparse: Reparse called before any Parse/ParseBytes")
	}
	edited, err := applyEdit(p.source, edit)
	if err != nil {
		return Result{}, err
	}
	return p.parse(context.Background(), []byte(edited), p.filePath)
}

// applyEdit splices new_text into source over [StartOffset, StartOffset+OldLength).
func applyEdit(source string, edit ast.EditRange) (string, error) {
	if edit.StartOffset < 0 || edit.OldLength < 0 || edit.StartOffset+edit.OldLength > len(source) {
		return "", fmt.Errorf("javaparse: edit range out of bounds for source of length %d", len(source))
	}
	return source[:edit.StartOffset] + edit.NewText + source[edit.StartOffset+edit.OldLength:], nil
}

// parse runs the validate -> lex -> parse pipeline once, instrumenting
// it with whatever logger/collector/tracer are attached.
func (p *Parser) parse(ctx context.Context, raw []byte, filePath string) (Result, error) {
	sessionID := uuid.NewString()
	ctx = logging.WithSessionID(ctx, sessionID)
	if filePath != "" {
		ctx = logging.WithFilePath(ctx, filePath)
	}

	start := time.Now()

	var span trace.Span
	if p.tracer != nil {
		ctx, span = p.tracer.Start(ctx, "Parse")
		tracing.SetSessionAttribute(span, sessionID)
		if filePath != "" {
			tracing.SetFileAttributes(span, filePath)
		}
		defer span.End()
	}

	guard := security.NewGuard(p.security)

	source, verr := validateSource(raw, guard, filePath)
	if verr != nil {
		return p.fail(ctx, span, filePath, start, "", verr)
	}

	lx := lexer.New(source, guard)
	tokens, lerr := lx.TokenizeAll()
	if lerr != nil {
		return p.fail(ctx, span, filePath, start, source, lerr)
	}

	a := arena.New(len(tokens))
	grammarTokens := extractComments(tokens, a)
	pr := parser.New(grammarTokens, a, guard)
	root, perr := pr.Parse()
	if perr != nil {
		return p.fail(ctx, span, filePath, start, source, perr)
	}

	p.source = source
	p.filePath = filePath
	p.arena = a
	p.mapper = position.NewMapper(source)
	p.tokenCount = len(tokens)

	result := Success(root, a)
	result.filePath = filePath

	duration := time.Since(start)
	if span != nil {
		tracing.SetTokenAttributes(span, len(tokens))
		tracing.SetNodeAttributes(span, a.Len())
		tracing.SetOutcomeAttribute(span, "success")
	}
	if p.logger != nil {
		p.logger.InfoContext(ctx, "parse completed",
			"session_id", sessionID,
			"duration_ms", duration.Milliseconds(),
			"tokens", len(tokens),
			"nodes", a.Len(),
		)
	}
	if p.metrics != nil {
		p.metrics.RecordParse("success", duration.Seconds(), len(tokens), a.Len())
		p.metrics.RecordFileProcessed()
	}

	return result, nil
}

// fail enriches a validator/lexer/parser error with its line/column via
// the position mapper (when source is available) and surrounding
// source context, wraps it as a singleton Failure, and records the
// outcome through whatever instrumentation is attached.
func (p *Parser) fail(ctx context.Context, span trace.Span, filePath string, start time.Time, source string, err *errors.Error) (Result, error) {
	if source != "" {
		mapper := position.NewMapper(source)
		line, column := mapper.OffsetToPosition(err.Location.Offset)
		err.Location.Line = line
		err.Location.Column = column
		err.Location.File = filePath
		err = errors.WithContext(err, source)
	} else if err.Location.File == "" {
		err.Location.File = filePath
	}

	duration := time.Since(start)
	if span != nil {
		tracing.SetOutcomeAttribute(span, "failure")
		tracing.SetErrorAttributes(span, err, string(err.Type))
	}
	if p.logger != nil {
		p.logger.ErrorContext(ctx, "parse failed",
			"duration_ms", duration.Milliseconds(),
			"error_type", string(err.Type),
			"message", err.Message,
		)
	}
	if p.metrics != nil {
		p.metrics.RecordParse("failure", duration.Seconds(), 0, 0)
		p.metrics.RecordParseError(string(err.Type))
	}

	result := Failure(errors.Single(err))
	result.filePath = filePath
	return result, fmt.Errorf("javaparse: %w", err)
}

// -- Package-level convenience API: Parse/ParseBytes free functions
// over a stateless default Parser. --

// Parse reads and parses path using security.Default() bounds and no
// logging/metrics/tracing instrumentation.
func Parse(path string) (Result, error) {
	return NewParser(security.Default()).Parse(path)
}

// ParseBytes parses in-memory Java source using security.Default() bounds.
func ParseBytes(data []byte, filePath string) (Result, error) {
	return NewParser(security.Default()).ParseBytes(data, filePath)
}

// ParseFiles parses every path in paths concurrently, each with its own
// independent Parser instance, fanned
// out over a bounded worker pool sized by concurrency. If concurrency
// is <= 0, it defaults to the number of files (uncapped). Results are
// returned in the same order as paths; a per-file error does not stop
// the other files from being parsed.
func ParseFiles(paths []string, concurrency int, cfg security.Config) []Result {
	if concurrency <= 0 {
		concurrency = len(paths)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(paths))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := NewParser(cfg).Parse(path)
			if err != nil && !result.IsSuccess() {
				results[i] = result
				return
			}
			results[i] = result
		}(i, path)
	}

	wg.Wait()
	return results
}
