package lexer

import "github.com/javalang/javaparse/pkg/javaparse/errors"

// scanNumber scans decimal, binary, hex and hex-float literals, choosing
// the result kind from the suffix, the presence of a decimal point or
// exponent, or defaulting to an integer.
func (l *Lexer) scanNumber(start int) (Token, *errors.Error) {
	if l.peekByte(0) == '0' && (l.peekByte(1) == 'x' || l.peekByte(1) == 'X') {
		return l.scanHexNumber(start)
	}
	if l.peekByte(0) == '0' && (l.peekByte(1) == 'b' || l.peekByte(1) == 'B') {
		return l.scanBinaryNumber(start)
	}
	return l.scanDecimalNumber(start)
}

func isDigitOrUnderscore(b byte) bool { return (b >= '0' && b <= '9') || b == '_' }

func (l *Lexer) consumeDigits(pred func(byte) bool) {
	for l.pos < len(l.src) && pred(l.src[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) scanBinaryNumber(start int) (Token, *errors.Error) {
	l.pos += 2 // "0b"/"0B"
	digitsStart := l.pos
	l.consumeDigits(func(b byte) bool { return b == '0' || b == '1' || b == '_' })
	if l.pos == digitsStart {
		return l.errorf(start, "binary literal requires at least one digit")
	}
	kind := TokenIntegerLiteral
	if l.peekByte(0) == 'l' || l.peekByte(0) == 'L' {
		l.pos++
		kind = TokenLongLiteral
	}
	return l.finish(kind, start), nil
}

func (l *Lexer) scanHexNumber(start int) (Token, *errors.Error) {
	l.pos += 2 // "0x"/"0X"
	digitsStart := l.pos
	l.consumeDigits(func(b byte) bool { return isHexDigit(rune(b)) || b == '_' })

	isFloat := false
	if l.peekByte(0) == '.' {
		isFloat = true
		l.pos++
		l.consumeDigits(func(b byte) bool { return isHexDigit(rune(b)) || b == '_' })
	}
	if l.pos == digitsStart && !isFloat {
		return l.errorf(start, "hexadecimal literal requires at least one digit")
	}

	if l.peekByte(0) == 'p' || l.peekByte(0) == 'P' {
		isFloat = true
		l.pos++
		if l.peekByte(0) == '+' || l.peekByte(0) == '-' {
			l.pos++
		}
		expStart := l.pos
		l.consumeDigits(isDigitOrUnderscore)
		if l.pos == expStart {
			return l.errorf(start, "hex float requires a binary exponent")
		}
	} else if isFloat {
		return l.errorf(start, "hexadecimal floating-point literal requires a binary exponent")
	}

	kind := TokenIntegerLiteral
	switch l.peekByte(0) {
	case 'l', 'L':
		l.pos++
		kind = TokenLongLiteral
	case 'f', 'F':
		l.pos++
		kind = TokenFloatLiteral
	case 'd', 'D':
		l.pos++
		kind = TokenDoubleLiteral
	default:
		if isFloat {
			kind = TokenDoubleLiteral
		}
	}
	return l.finish(kind, start), nil
}

func (l *Lexer) scanDecimalNumber(start int) (Token, *errors.Error) {
	isFloat := false

	if l.peekByte(0) == '.' {
		// Leading-dot float, e.g. ".5" — the dispatcher in NextToken only
		// sends us here when a digit follows the dot.
		isFloat = true
		l.pos++
		l.consumeDigits(isDigitOrUnderscore)
	} else {
		l.consumeDigits(isDigitOrUnderscore)
		if l.peekByte(0) == '.' && l.peekByte(1) != '.' {
			// "1." is itself a valid double literal even with no trailing digits.
			isFloat = true
			l.pos++
			l.consumeDigits(isDigitOrUnderscore)
		}
	}

	if l.peekByte(0) == 'e' || l.peekByte(0) == 'E' {
		save := l.pos
		l.pos++
		if l.peekByte(0) == '+' || l.peekByte(0) == '-' {
			l.pos++
		}
		expStart := l.pos
		l.consumeDigits(isDigitOrUnderscore)
		if l.pos == expStart {
			l.pos = save
		} else {
			isFloat = true
		}
	}

	kind := TokenIntegerLiteral
	switch l.peekByte(0) {
	case 'l', 'L':
		l.pos++
		kind = TokenLongLiteral
	case 'f', 'F':
		l.pos++
		kind = TokenFloatLiteral
	case 'd', 'D':
		l.pos++
		kind = TokenDoubleLiteral
	default:
		if isFloat {
			kind = TokenDoubleLiteral
		}
	}
	return l.finish(kind, start), nil
}
