package lexer

import (
	"unicode/utf8"

	"github.com/javalang/javaparse/pkg/javaparse/errors"
)

// scanString consumes a regular string literal. Escape sequences are
// consumed but not decoded — the raw form (including backslashes) is
// what RawText carries.
func (l *Lexer) scanString(start int) (Token, *errors.Error) {
	l.pos++ // opening '"'
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '"':
			l.pos++
			return l.finish(TokenStringLiteral, start), nil
		case '\\':
			if err := l.skipEscapeSequence(); err != nil {
				return Token{}, err
			}
		case '\n':
			return l.errorf(start, "unterminated string literal")
		default:
			l.pos++
		}
	}
	return l.errorf(start, "unterminated string literal")
}

// scanTextBlock consumes a """... """ text block. The opening delimiter
// must be followed by only whitespace then a newline on the same line;
// an unclosed text block is a hard lexer failure.
func (l *Lexer) scanTextBlock(start int) (Token, *errors.Error) {
	l.pos += 3 // opening """
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.src) || l.src[l.pos] != '\n' {
		return l.errorf(start, "text block opening delimiter must be followed by a newline")
	}
	l.pos++ // newline

	for l.pos < len(l.src) {
		if l.hasPrefix(`"""`) {
			l.pos += 3
			return l.finish(TokenTextBlockLiteral, start), nil
		}
		if l.src[l.pos] == '\\' {
			if err := l.skipEscapeSequence(); err != nil {
				return Token{}, err
			}
			continue
		}
		l.pos++
	}
	return l.errorf(start, "unclosed text block")
}

// scanChar consumes one possibly-escaped character then the closing '\''.
func (l *Lexer) scanChar(start int) (Token, *errors.Error) {
	l.pos++ // opening '\''
	if l.pos >= len(l.src) {
		return l.errorf(start, "unterminated character literal")
	}
	if l.src[l.pos] == '\\' {
		if err := l.skipEscapeSequence(); err != nil {
			return Token{}, err
		}
	} else if l.src[l.pos] == '\'' || l.src[l.pos] == '\n' {
		return l.errorf(start, "empty or invalid character literal")
	} else {
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
	}
	if l.pos >= len(l.src) || l.src[l.pos] != '\'' {
		return l.errorf(start, "expected closing ' for character literal")
	}
	l.pos++
	return l.finish(TokenCharLiteral, start), nil
}

// skipEscapeSequence advances past one escape: standard single-char,
// octal (1-3 digits, the 3-digit form requiring a leading digit ≤ 3), or
// Unicode (one or more 'u' then exactly 4 hex digits).
func (l *Lexer) skipEscapeSequence() *errors.Error {
	start := l.pos
	l.pos++ // backslash
	if l.pos >= len(l.src) {
		_, err := l.errorf(start, "dangling escape at end of input")
		return err
	}
	c := l.src[l.pos]
	switch {
	case c == 'u':
		for l.pos < len(l.src) && l.src[l.pos] == 'u' {
			l.pos++
		}
		if l.pos+4 > len(l.src) {
			_, err := l.errorf(start, "truncated unicode escape")
			return err
		}
		for i := 0; i < 4; i++ {
			if !isHexDigit(rune(l.src[l.pos])) {
				_, err := l.errorf(start, "invalid unicode escape")
				return err
			}
			l.pos++
		}
		return nil
	case c >= '0' && c <= '7':
		digits := 1
		maxDigits := 2
		if c <= '3' {
			maxDigits = 3
		}
		l.pos++
		for digits < maxDigits && l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '7' {
			l.pos++
			digits++
		}
		return nil
	case c == 'b' || c == 't' || c == 'n' || c == 'f' || c == 'r' || c == '"' ||
		c == '\'' || c == '\\' || c == 's':
		l.pos++
		return nil
	default:
		_, err := l.errorf(start, "invalid escape sequence \\%c", c)
		return err
	}
}
