package errors

import (
	"strings"

	"github.com/javalang/javaparse/pkg/javaparse/ast"
)

// ErrorType categorizes the type of error encountered before or during a parse.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation" // invalid UTF-8, source too large, source empty
	ErrorTypeLexer ErrorType = "lexer" // unclosed text block, escape nesting too deep
	ErrorTypeParser ErrorType = "parser" // unexpected token, depth exceeded, timeout
	ErrorTypeArena ErrorType = "arena" // internal bookkeeping fault, never expected in normal use
)

// Error is a single located diagnostic. Every error produced by the core
// carries the byte offset and derived line/column it occurred at.
type Error struct {
	Type ErrorType
	Message string
	Location ast.Location
	Context string // surrounding source lines, filled in on request
}

// Error implements the error interface, formatting as
// "[<path>:]<line>:<column>: <message>", with the optional source
// context appended beneath.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Location.IsValid() {
		sb.WriteString(e.Location.String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Context != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Context)
	}
	return sb.String()
}

// ErrorList is a non-empty, ordered collection of located errors. It is
// the payload of a Failure result: construction panics if
// asked to wrap an empty slice, matching "Empty error lists are rejected
// at construction".
type ErrorList struct {
	Errors []*Error
}

// NewErrorList wraps a non-empty slice of errors. The parser itself only
// ever produces a single error per parse,
// but batch callers (ParseFiles, ParseMulti-style composition) legitimately
// accumulate one error per file, so the list type supports more than one
// entry.
func NewErrorList(errs []*Error) *ErrorList {
	if len(errs) == 0 {
		panic("errors: NewErrorList requires at least one error")
	}
	return &ErrorList{Errors: errs}
}

// Single wraps exactly one error — the shape every parser/lexer failure
// takes.
func Single(err *Error) *ErrorList {
	return &ErrorList{Errors: []*Error{err}}
}

// Error implements the error interface, formatting one line per error.
func (el *ErrorList) Error() string {
	var sb strings.Builder
	for i, err := range el.Errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// First returns the first error in the list, which for a single parse is
// the only error.
func (el *ErrorList) First() *Error {
	return el.Errors[0]
}
