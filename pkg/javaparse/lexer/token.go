package lexer

// Token is an immutable record produced by the lexer: a kind, the byte
// span it occupies in the source, and its text in both raw and
// Unicode-escape-decoded form.
type Token struct {
	Kind TokenKind
	StartOffset int
	EndOffset int
	RawText string

	// DecodedText holds the Unicode-escape-decoded form and is only set
	// when it differs from RawText (identifiers/keywords containing
	// \uXXXX escapes per JLS §3.3). Callers should use Text() rather than
	// this field directly.
	DecodedText string
}

// Text returns the token's semantic text: DecodedText when the token
// contained Unicode escapes, RawText otherwise. Keyword matching and
// identifier identity both key off this value.
func (t Token) Text() string {
	if t.DecodedText != "" {
		return t.DecodedText
	}
	return t.RawText
}

// Len returns the token's byte length.
func (t Token) Len() int { return t.EndOffset - t.StartOffset }

// IsEOF reports whether t is the terminal end-of-file token.
func (t Token) IsEOF() bool { return t.Kind == TokenEOF }
