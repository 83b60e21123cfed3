package errors

import (
	"fmt"
	"strings"

	"github.com/javalang/javaparse/pkg/javaparse/ast"
)

// ExtractContext renders the lines of source surrounding location, with
// an arrow marker on the offending line and a caret under the column.
// Unlike a re-read-the-file approach, this works directly off the source
// text the parser already holds in memory, so it is correct even for
// ParseBytes callers that never had a file on disk.
func ExtractContext(source string, location ast.Location, contextLines int) string {
	if !location.IsValid() {
		return ""
	}

	lines := strings.Split(source, "\n")

	errorLine := location.Line - 1 // 0-based
	if errorLine < 0 || errorLine >= len(lines) {
		return ""
	}

	startLine := errorLine - contextLines
	endLine := errorLine + contextLines
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	var sb strings.Builder
	maxLineNumWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		lineNumStr := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		prefix := " "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %s | %s\n", prefix, lineNumStr, lines[i]))

		if i == errorLine && location.Column > 0 {
			padding := strings.Repeat(" ", location.Column+1)
			sb.WriteString(fmt.Sprintf(" %s | %s^\n", strings.Repeat(" ", maxLineNumWidth), padding))
		}
	}

	return sb.String()
}

// WithContext returns err with Context populated from source, showing
// two lines of surrounding code by default.
func WithContext(err *Error, source string) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(source, err.Location, 2)
	}
	return err
}
