// Package javaparse parses Java source text, through JDK 25 language
// features, into a compact arena-backed AST.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: node kinds, locations, and the EditRange shape Reparse accepts
// - arena: the contiguous node store a parse allocates into
// - lexer: tokenizes source text
// - parser: recursive-descent parser producing arena nodes
// - position: byte-offset to line/column mapping
// - security: resource bounds (size, token count, recursion depth, timeout)
// - errors: located diagnostics with optional source context
//
// The top-level package ties these together behind Parser and the
// package-level Parse/ParseBytes/ParseFiles functions, and optionally
// wires in pkg/telemetry's logging, metrics and tracing.
//
// # Basic usage
//
//	result, err := javaparse.Parse("Greeter.java")
//	if err != nil {
//	 log.Fatal(err)
//	}
//	if !result.IsSuccess() {
//	 fmt.Println(result.Errors())
//	 return
//	}
//	fmt.Println("root kind:", result.Arena().Kind(result.RootIndex()))
//
// # A Parser with bounds and instrumentation
//
//	cfg := security.Default().WithMaxRecursionDepth(500)
//	p := javaparse.NewParser(cfg).
//	 WithLogger(logger).
//	 WithMetrics(collector).
//	 WithTracer(tracer)
//
//	result, err := p.Parse("Greeter.java")
//
// # Reparsing after an edit
//
// A Parser retains the source from its last Parse/ParseBytes call, so a
// single-point edit can be reapplied without the caller re-sending the
// whole file:
//
//	result, err := p.Reparse(ast.EditRange{
//	 StartOffset: 42,
//	 OldLength: 5,
//	 NewLength: 7,
//	 NewText: "Howdy!!",
//	})
//
// Reparse currently performs a full reparse of the edited source; the
// EditRange shape exists so a future incremental reparse does not change
// the method's signature.
//
// # Parsing many files
//
// Callers may parse multiple files concurrently by using independent
// Parser instances — a Parser, its token vector and its arena are never
// shared across goroutines. ParseFiles does exactly this over a bounded
// worker pool:
//
//	results := javaparse.ParseFiles(paths, runtime.NumCPU(), security.Default())
//	for i, r := range results {
//	 if !r.IsSuccess() {
//	 log.Printf("%s: %v", paths[i], r.Errors())
//	 }
//	}
//
// # Error propagation
//
// The parser never recovers from an error: one malformed construct
// yields a single diagnostic wrapped in a Failure result, formatted as
// "[<path>:]<line>:<column>: <message>" with optional source context.
package javaparse
