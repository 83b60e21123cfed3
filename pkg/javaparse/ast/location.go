package ast

import "fmt"

// Location identifies a source position for diagnostics. Line and Column
// are 1-based and derived from a byte offset via the position mapper, so
// they are always consistent with the file's actual content.
type Location struct {
	File string // path of the source file, empty for in-memory sources
	Offset int // byte offset into the source
	Line int // 1-based line number
	Column int // 1-based column number
}

// String returns a human-readable representation: "file:line:column",
// or just "line:column" when the file is unknown.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid reports whether the location carries a usable line number.
func (l Location) IsValid() bool {
	return l.Line > 0
}
