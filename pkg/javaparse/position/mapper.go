// Package position maps byte offsets into source text to 1-based line
// and column numbers.
package position

import (
	"sort"

	"github.com/javalang/javaparse/pkg/javaparse/ast"
)

// Mapper precomputes the byte offset of every line start so that
// OffsetToPosition can answer in O(log L) time, where L is the number
// of lines, rather than rescanning the source on every diagnostic.
type Mapper struct {
	lineStarts []int // lineStarts[i] is the byte offset of line i+1
	source string
}

// NewMapper scans source once for '\n' bytes and records where each
// line begins. Lines are split on '\n' only; a trailing '\r' before it
// is left as part of the line, matching how the lexer treats CRLF.
func NewMapper(source string) *Mapper {
	lineStarts := make([]int, 1, 64)
	lineStarts[0] = 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Mapper{lineStarts: lineStarts, source: source}
}

// OffsetToPosition converts a byte offset into a 1-based (line, column).
// Column counts bytes since the start of the line, not runes — this
// matches the lexer's own offsets, which are always byte positions.
func (m *Mapper) OffsetToPosition(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	// sort.Search finds the first lineStarts[i] > offset; the line
	// containing offset is the one immediately before it.
	idx := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	})
	lineIdx := idx - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	line = lineIdx + 1
	column = offset - m.lineStarts[lineIdx] + 1
	return line, column
}

// OffsetToLocation builds a full ast.Location for offset, with File left
// empty; callers that have a source path set it themselves.
func (m *Mapper) OffsetToLocation(offset int) ast.Location {
	line, column := m.OffsetToPosition(offset)
	return ast.Location{Offset: offset, Line: line, Column: column}
}

// LineCount returns the number of lines in the source, counting a final
// partial line with no trailing newline.
func (m *Mapper) LineCount() int {
	return len(m.lineStarts)
}
