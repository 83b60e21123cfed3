package parser

import (
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

var primitiveTypeKinds = map[lexer.TokenKind]bool{
	lexer.TokenBoolean: true, lexer.TokenByte: true, lexer.TokenShort: true,
	lexer.TokenInt: true, lexer.TokenLong: true, lexer.TokenChar: true,
	lexer.TokenFloat: true, lexer.TokenDouble: true, lexer.TokenVoid: true,
}

// parseType parses a full type reference: primitive or class type
// (possibly parameterized), an optional '&'-joined intersection, and
// trailing array dimensions.
//
// Whether an intersection wrapper node is needed has to be known before
// the first operand is allocated — the arena requires a parent's index
// to precede all of its children — so a cheap bounded
// lookahead decides up front whether a top-level '&' follows.
func (p *Parser) parseType(parent int32) (int32, *errors.Error) {
	if err := p.enterDepth(); err != nil {
		return 0, err
	}
	defer p.exitDepth()

	start := uint32(p.current().StartOffset)

	if p.hasTopLevelAmpersandAhead() {
		node := p.allocate(start, ast.KindIntersectionType, parent)
		if _, err := p.parseSingleType(node); err != nil {
			return 0, err
		}
		for p.at(lexer.TokenAmp) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if _, err := p.parseSingleType(node); err != nil {
				return 0, err
			}
		}
		p.finalize(node, uint32(p.previousEnd()))
		return p.parseArrayDimensions(node, start, parent)
	}

	single, err := p.parseSingleType(parent)
	if err != nil {
		return 0, err
	}
	return p.parseArrayDimensions(single, start, parent)
}

// parseSingleType parses one primitive-or-class type with no
// intersection handling — the unit parseType composes into intersections.
func (p *Parser) parseSingleType(parent int32) (int32, *errors.Error) {
	if primitiveTypeKinds[p.current().Kind] {
		return p.parsePrimitiveType(parent)
	}
	return p.parseClassOrParameterizedType(parent)
}

func (p *Parser) parsePrimitiveType(parent int32) (int32, *errors.Error) {
	tok, err := p.advance()
	if err != nil {
		return 0, err
	}
	node := p.allocate(p.offsetAt(tok), ast.KindPrimitiveType, parent)
	p.finalize(node, uint32(tok.EndOffset))
	return node, nil
}

// parseClassOrParameterizedType parses a possibly-qualified class name
// with optional type arguments, e.g.
// "java.util.Map<String, java.util.List<Integer>>". The node's final
// kind (class vs. parameterized) is only known once the qualified name
// and any '<' have been seen, so the name is scanned before the arena
// allocation happens — every node's kind stays fixed for its whole
// lifetime; length is the only field ever mutated after allocation.
func (p *Parser) parseClassOrParameterizedType(parent int32) (int32, *errors.Error) {
	start := p.current().StartOffset

	if !isIdentifierLike(p.current().Kind) {
		return 0, p.unexpected("a type name")
	}
	if _, err := p.advance(); err != nil {
		return 0, err
	}

	for p.at(lexer.TokenDot) && isIdentifierLike(p.peekAt(1).Kind) {
		if _, err := p.advance(); err != nil { // '.'
			return 0, err
		}
		if _, err := p.advance(); err != nil { // next segment
			return 0, err
		}
	}

	var node int32
	if p.at(lexer.TokenLt) {
		node = p.allocate(uint32(start), ast.KindParameterizedType, parent)
		if _, err := p.parseTypeArguments(node); err != nil {
			return 0, err
		}
	} else {
		node = p.allocate(uint32(start), ast.KindClassType, parent)
	}

	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func isIdentifierLike(kind lexer.TokenKind) bool {
	return kind == lexer.TokenIdentifier || lexer.IsContextualKeyword(kind)
}

// parseTypeArguments parses '<' (type | wildcard) (','...)* '>',
// consulting the pending-'>' counter so nested generics like
// Map<String, List<Integer>> resplit correctly.
func (p *Parser) parseTypeArguments(parent int32) (int, *errors.Error) {
	if _, err := p.advance(); err != nil { // '<'
		return 0, err
	}
	if p.consumePendingOrGT() {
		return p.previousEnd(), nil // diamond '<>'
	}
	for {
		if p.at(lexer.TokenQuestion) {
			if err := p.parseWildcardType(parent); err != nil {
				return 0, err
			}
		} else {
			if _, err := p.parseType(parent); err != nil {
				return 0, err
			}
		}
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			continue
		}
		break
	}
	if !p.expectGT() {
		return 0, p.unexpected("'>'")
	}
	return p.previousEnd(), nil
}

func (p *Parser) parseWildcardType(parent int32) *errors.Error {
	start := p.current().StartOffset
	node := p.allocate(uint32(start), ast.KindWildcardType, parent)
	if _, err := p.advance(); err != nil { // '?'
		return err
	}
	if p.at(lexer.TokenExtends) || p.at(lexer.TokenSuper) {
		if _, err := p.advance(); err != nil {
			return err
		}
		if _, err := p.parseType(node); err != nil {
			return err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

// parseArrayDimensions consumes any trailing '[' ']' pairs, allocating
// one KindArrayType node per dimension as a sibling of the element type
// node under the same parent; the array node's span encloses the element's.
func (p *Parser) parseArrayDimensions(base int32, start uint32, parent int32) (int32, *errors.Error) {
	current := base
	for p.at(lexer.TokenLBracket) && p.peekAt(1).Kind == lexer.TokenRBracket {
		// The element already allocated (current) cannot become this
		// node's child after the fact, so array-type nodes are recorded
		// as siblings of their element at the same parent; the element
		// relationship is recoverable from source containment (the array
		// node's span encloses the element's span).
		if _, err := p.advance(); err != nil { // '['
			return 0, err
		}
		if _, err := p.advance(); err != nil { // ']'
			return 0, err
		}
		arr := p.allocate(start, ast.KindArrayType, parent)
		p.finalize(arr, uint32(p.previousEnd()))
		current = arr
	}
	return current, nil
}

func (p *Parser) previousEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.tokens[p.pos-1].EndOffset
}

// hasTopLevelAmpersandAhead performs a bounded, allocation-free scan for
// a '&' that would join this type with another at the current nesting
// level (not inside a generic argument list or parentheses), stopping
// at the first statement/member delimiter.
func (p *Parser) hasTopLevelAmpersandAhead() bool {
	angleDepth := 0
	parenDepth := 0
	for i := 0; i < 4096; i++ {
		tok := p.peekAt(i)
		if tok.IsEOF() {
			return false
		}
		switch tok.Kind {
		case lexer.TokenLt:
			angleDepth++
		case lexer.TokenGt:
			if angleDepth > 0 {
				angleDepth--
			}
		case lexer.TokenShr:
			if angleDepth >= 2 {
				angleDepth -= 2
			} else {
				angleDepth = 0
			}
		case lexer.TokenUshr:
			if angleDepth >= 3 {
				angleDepth -= 3
			} else {
				angleDepth = 0
			}
		case lexer.TokenLParen:
			parenDepth++
		case lexer.TokenRParen:
			if parenDepth == 0 {
				return false
			}
			parenDepth--
		case lexer.TokenAmp:
			if angleDepth == 0 && parenDepth == 0 {
				return true
			}
		case lexer.TokenSemicolon, lexer.TokenLBrace, lexer.TokenRBrace,
			lexer.TokenComma, lexer.TokenArrow:
			if angleDepth == 0 && parenDepth == 0 {
				return false
			}
		}
	}
	return false
}

// consumePendingOrGT resolves a single '>' from either the pending
// counter or the current token; used where a bare '>' is mandatory
// (e.g. after an empty diamond).
func (p *Parser) consumePendingOrGT() bool {
	if p.pending > 0 {
		p.pending--
		return true
	}
	if p.at(lexer.TokenGt) {
		p.advance()
		return true
	}
	return false
}

// expectGT implements the pending-greater-than mechanism: resplitting
// a single '>' out of '>>'/'>>>' (and their '=' variants) when the
// lexer handed back a composite token.
func (p *Parser) expectGT() bool {
	if p.pending > 0 {
		p.pending--
		return true
	}
	switch p.current().Kind {
	case lexer.TokenGt:
		p.advance()
		return true
	case lexer.TokenShr:
		p.advance()
		p.pending++
		return true
	case lexer.TokenUshr:
		p.advance()
		p.pending += 2
		return true
	}
	return false
}
