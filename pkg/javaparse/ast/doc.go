// Package ast defines the node-kind inventory and source-location types
// shared by the lexer, arena and parser.
//
// This package intentionally does not define a pointer-based tree: the
// actual AST lives in the arena as a flat array of fixed-size records
// keyed by integer index (see package arena). NodeKind is the one byte of
// payload that distinguishes those records; Location is the only type
// that ever needs a file name attached, and exists purely for
// diagnostics.
//
// # Node kinds
//
// NodeKind enumerates every node shape the parser can allocate:
// declarations, statements, expressions, literals, patterns, types and
// comments. Richer per-kind data (a qualified name's text, a
// declaration's modifier flags) is not stored here — callers recompute it
// from the node's source span or keep it in a side table keyed by node
// index.
//
// # Source locations
//
// Location carries a 1-based line and column plus the byte offset they
// were derived from, and the originating file path when one exists:
//
//	loc := mapper.OffsetToLocation(tok.StartOffset)
//	loc.File = sourcePath
package ast
