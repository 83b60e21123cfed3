package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/javalang/javaparse/pkg/javaparse/errors"
)

// scanIdentifierOrKeyword scans an identifier, decoding any \uXXXX
// escapes along the way (JLS §3.3 requires this to happen before
// keyword/identifier classification). DecodedText is only populated —
// and differs from the raw text — when an escape was actually present.
func (l *Lexer) scanIdentifierOrKeyword(start int) (Token, *errors.Error) {
	var decoded strings.Builder
	sawEscape := false
	segStart := start // start of the most recent not-yet-copied raw run
	first := true

	for l.pos < len(l.src) {
		if l.peekByte(0) == '\\' && l.peekByte(1) == 'u' {
			escStart := l.pos
			r, ok, err := l.consumeUnicodeEscape()
			if err != nil {
				return Token{}, err
			}
			if !ok {
				break
			}
			if first && !isIdentifierStart(r) {
				l.pos = escStart
				break
			}
			if !first && !isIdentifierPart(r) {
				l.pos = escStart
				break
			}
			if !sawEscape {
				decoded.WriteString(l.src[segStart:escStart])
				sawEscape = true
			}
			decoded.WriteRune(r)
			first = false
			continue
		}

		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if first {
			if !isIdentifierStart(r) {
				break
			}
		} else if !isIdentifierPart(r) {
			break
		}
		if sawEscape {
			decoded.WriteRune(r)
		}
		l.pos += size
		first = false
	}

	raw := l.src[start:l.pos]
	tok := Token{Kind: TokenIdentifier, StartOffset: start, EndOffset: l.pos, RawText: raw}
	text := raw
	if sawEscape {
		tok.DecodedText = decoded.String()
		text = tok.DecodedText
	}
	// non-sealed is the one hyphenated contextual keyword: '-' is not an
	// identifier character, so it never scans as part of the run above —
	// stitch it on by look-ahead once "non" has been recognized.
	if text == "non" && l.hasPrefix("-sealed") {
		l.pos += len("-sealed")
		tok.EndOffset = l.pos
		tok.RawText = l.src[start:l.pos]
		tok.DecodedText = ""
		tok.Kind = TokenNonSealed
		return tok, nil
	}
	tok.Kind = classifyWord(text)
	return tok, nil
}

// consumeUnicodeEscape decodes one \uXXXX run (any positive number of
// 'u' characters is accepted per JLS §3.3). ok is false and the cursor
// is left unmoved when the bytes at the cursor are not actually a
// Unicode escape.
func (l *Lexer) consumeUnicodeEscape() (rune, bool, *errors.Error) {
	save := l.pos
	l.pos++ // '\\'
	uCount := 0
	for l.peekByte(0) == 'u' {
		l.pos++
		uCount++
	}
	if uCount == 0 {
		l.pos = save
		return 0, false, nil
	}
	if l.pos+4 > len(l.src) {
		_, err := l.errorf(save, "truncated unicode escape")
		l.pos = save
		return 0, false, err
	}
	hex := l.src[l.pos: l.pos+4]
	value, convErr := strconv.ParseUint(hex, 16, 32)
	if convErr != nil {
		_, err := l.errorf(save, "invalid unicode escape %q", hex)
		l.pos = save
		return 0, false, err
	}
	l.pos += 4
	return rune(value), true, nil
}
