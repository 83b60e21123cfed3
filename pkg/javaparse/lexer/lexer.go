package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/security"
)

// Lexer is a single-pass, stateful forward scanner over UTF-8 source
// text. NextToken advances the internal position;
// TokenizeAll drives it to completion, eagerly materializing the whole
// token vector so the parser can backtrack in O(1).
type Lexer struct {
	src string
	pos int // byte offset of the next unconsumed byte
	guard *security.Guard
}

// New returns a lexer over src. guard may be nil, in which case no
// token-count bound is enforced; otherwise TokenizeAll checks the count
// once, after the scan completes.
func New(src string, guard *security.Guard) *Lexer {
	return &Lexer{src: src, guard: guard}
}

// TokenizeAll scans src to completion and returns every token including
// a trailing EOF sentinel, or a lexer error on the first unscannable
// construct.
func (l *Lexer) TokenizeAll() ([]Token, *errors.Error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			break
		}
	}
	if l.guard != nil {
		if err := l.guard.CheckTokenCount(len(tokens)); err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

// NextToken scans and returns the next token, skipping any intervening
// whitespace first.
func (l *Lexer) NextToken() (Token, *errors.Error) {
	l.skipWhitespace()

	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, StartOffset: l.pos, EndOffset: l.pos}, nil
	}

	start := l.pos
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case r == '/' && l.peekByte(1) == '/':
		return l.scanLineComment(start)
	case r == '/' && l.peekByte(1) == '*':
		return l.scanBlockComment(start)
	case r == '"' && l.hasPrefix(`"""`):
		return l.scanTextBlock(start)
	case r == '"':
		return l.scanString(start)
	case r == '\'':
		return l.scanChar(start)
	case isDigit(r):
		return l.scanNumber(start)
	case r == '.' && isDigit(l.peekRuneAt(1)):
		return l.scanNumber(start)
	case isIdentifierStart(r) || r == '\\':
		return l.scanIdentifierOrKeyword(start)
	default:
		return l.scanOperator(start, r)
	}
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) peekRuneAt(byteOffset int) rune {
	if l.pos+byteOffset >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos+byteOffset:])
	return r
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.src[l.pos:], s)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

// skipWhitespace advances past Unicode whitespace between tokens.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// errorf builds a lexer error at offset. Line/column are left zero here:
// the top-level javaparse API fills them in via the position mapper once
// a Failure is about to be returned, so the lexer itself never needs the
// full line-start index.
func (l *Lexer) errorf(offset int, format string, args...any) (Token, *errors.Error) {
	return Token{}, &errors.Error{
		Type: errors.ErrorTypeLexer,
		Message: fmt.Sprintf(format, args...),
		Location: ast.Location{Offset: offset},
	}
}
