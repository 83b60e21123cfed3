package javaparse

import (
	"strconv"
	"strings"

	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
)

// Result is the two-variant sum every parse produces: exactly one of
// Success (a valid root index into Arena) or Failure (a non-empty error
// list) is populated — never both, never neither.
type Result struct {
	ok bool
	rootID int32
	arena *arena.Arena
	errs *errors.ErrorList
	filePath string
}

// Success builds the successful variant, pairing a root node index with
// the arena it lives in. The arena must outlive the Result.
func Success(root int32, a *arena.Arena) Result {
	return Result{ok: true, rootID: root, arena: a}
}

// Failure builds the failed variant. errs must be non-empty; Failure
// panics otherwise, matching "empty error lists are rejected at
// construction".
func Failure(errs *errors.ErrorList) Result {
	if errs == nil || errs.Count() == 0 {
		panic("javaparse: Failure requires a non-empty error list")
	}
	return Result{ok: false, errs: errs}
}

// IsSuccess reports whether the parse succeeded.
func (r Result) IsSuccess() bool { return r.ok }

// RootIndex returns the root node's arena index. Only valid when
// IsSuccess is true.
func (r Result) RootIndex() int32 { return r.rootID }

// Arena returns the node arena backing a successful result. Only valid
// when IsSuccess is true, and only while the Result is alive.
func (r Result) Arena() *arena.Arena { return r.arena }

// Errors returns the error list backing a failed result. Only valid when
// IsSuccess is false.
func (r Result) Errors() *errors.ErrorList { return r.errs }

// String renders a human-readable report: a one-line success summary, or
// one "[<path>:]line:column: message" line per error.
func (r Result) String() string {
	if r.ok {
		return "Success(root=" + strconv.Itoa(int(r.rootID)) + ")"
	}
	var sb strings.Builder
	for i, e := range r.errs.Errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		if r.filePath != "" && e.Location.File == "" {
			e.Location.File = r.filePath
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
