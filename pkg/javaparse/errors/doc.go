// Package errors provides located diagnostics for the lexer, parser and
// source validator.
//
// # Error types
//
// ErrorTypeValidation: invalid UTF-8, source too large, source empty.
//
// ErrorTypeLexer: unclosed text block, escape nesting too deep.
//
// ErrorTypeParser: unexpected token, recursion depth exceeded, parse timeout.
//
// ErrorTypeArena: internal bookkeeping faults — never expected from normal input.
//
// # Basic usage
//
//	err := &errors.Error{
//	 Type: errors.ErrorTypeParser,
//	 Message: "expected ';'",
//	 Location: loc,
//	}
//	list := errors.Single(err)
//
// # Format
//
// Errors format as "[<path>:]<line>:<column>: <message>", one per line,
// with an optional source-context block appended:
//
//	example.java:1:29: expected ;, found "}"
//	-> 1 | class C { void m() { return }
//	   |                               ^
package errors
