package lexer

import "github.com/javalang/javaparse/pkg/javaparse/errors"

// scanLineComment consumes "//", "///" (markdown doc, JEP 467) or a plain
// "//" comment through end of line. The distinction is decidable purely
// from the prefix, which is why it happens here rather than in the parser.
func (l *Lexer) scanLineComment(start int) (Token, *errors.Error) {
	kind := TokenLineComment
	l.pos += 2 // "//"
	if l.peekByte(0) == '/' {
		kind = TokenMarkdownDocComment
		l.pos++
	}
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	return l.finish(kind, start), nil
}

// scanBlockComment consumes "/* */" or "/** */" (Javadoc) through its
// closing delimiter. An unterminated block comment is tolerated as a
// lexer error rather than silently consuming to EOF.
func (l *Lexer) scanBlockComment(start int) (Token, *errors.Error) {
	kind := TokenBlockComment
	l.pos += 2 // "/*"
	if l.hasPrefix("*") && !l.hasPrefix("*/") {
		kind = TokenJavadocComment
	}
	for l.pos < len(l.src) {
		if l.hasPrefix("*/") {
			l.pos += 2
			return l.finish(kind, start), nil
		}
		l.pos++
	}
	return l.errorf(start, "unterminated block comment")
}

func (l *Lexer) finish(kind TokenKind, start int) Token {
	text := l.src[start:l.pos]
	return Token{Kind: kind, StartOffset: start, EndOffset: l.pos, RawText: text}
}
