package parser

import (
	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

var literalKinds = map[lexer.TokenKind]ast.NodeKind{
	lexer.TokenIntegerLiteral: ast.KindIntegerLiteral,
	lexer.TokenLongLiteral: ast.KindLongLiteral,
	lexer.TokenFloatLiteral: ast.KindFloatLiteral,
	lexer.TokenDoubleLiteral: ast.KindDoubleLiteral,
	lexer.TokenBooleanLiteral: ast.KindBooleanLiteral,
	lexer.TokenCharLiteral: ast.KindCharLiteral,
	lexer.TokenStringLiteral: ast.KindStringLiteral,
	lexer.TokenTextBlockLiteral: ast.KindTextBlockLiteral,
	lexer.TokenNullLiteral: ast.KindNullLiteral,
}

// parsePrimary is the base case of the expression precedence climb: the
// leaf and bracketing forms everything else composes from.
func (p *Parser) parsePrimary(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	tok := p.current()

	if kind, ok := literalKinds[tok.Kind]; ok {
		node := p.allocate(start, kind, parent)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return node, nil
	}

	switch tok.Kind {
	case lexer.TokenThis:
		node := p.allocate(start, ast.KindThisExpression, parent)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return node, nil
	case lexer.TokenSuper:
		node := p.allocate(start, ast.KindSuperExpression, parent)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return node, nil
	case lexer.TokenNew:
		return p.parseObjectOrArrayCreation(parent)
	case lexer.TokenSwitch:
		return p.parseSwitchExpression(parent)
	case lexer.TokenLParen:
		return p.parseParenthesizedOrLambda(parent)
	}

	if primitiveTypeKinds[tok.Kind] {
		return p.parsePrimitiveClassLiteral(parent)
	}

	if isIdentifierLike(tok.Kind) {
		if p.peekAt(1).Kind == lexer.TokenArrow {
			return p.parseLambda(parent)
		}
		node := p.allocate(start, ast.KindNameExpression, parent)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return node, nil
	}

	return 0, p.unexpected("an expression")
}

// parseParenthesizedOrLambda disambiguates "(" Expression ")" from a
// parenthesized lambda parameter list by a bounded scan for the matching
// ")" and a trailing "->".
func (p *Parser) parseParenthesizedOrLambda(parent int32) (int32, *errors.Error) {
	if p.looksLikeLambdaParams() {
		return p.parseLambda(parent)
	}

	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // '('
		return 0, err
	}
	node := p.allocate(start, ast.KindParenthesizedExpression, parent)
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// looksLikeLambdaParams performs a bounded, allocation-free scan from the
// current "(" to its matching ")" and reports whether a "->" follows,
// the same checkpoint-free disambiguation style as
// hasTopLevelAmpersandAhead (types.go).
func (p *Parser) looksLikeLambdaParams() bool {
	depth := 0
	for i := 0; i < 4096; i++ {
		tok := p.peekAt(i)
		if tok.IsEOF() {
			return false
		}
		switch tok.Kind {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth == 0 {
				return p.peekAt(i + 1).Kind == lexer.TokenArrow
			}
		}
	}
	return false
}

// parseLambda parses either a bare-identifier or parenthesized parameter
// list followed by "->" and a block or expression body.
func (p *Parser) parseLambda(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindLambdaExpression, parent)

	if p.at(lexer.TokenLParen) {
		if _, err := p.advance(); err != nil { // '('
			return 0, err
		}
		for !p.at(lexer.TokenRParen) {
			if _, err := p.parseLambdaParameter(node); err != nil {
				return 0, err
			}
			if p.at(lexer.TokenComma) {
				if _, err := p.advance(); err != nil {
					return 0, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return 0, err
		}
	} else {
		if _, err := p.parseLambdaParameter(node); err != nil {
			return 0, err
		}
	}

	if _, err := p.expect(lexer.TokenArrow); err != nil {
		return 0, err
	}

	if p.at(lexer.TokenLBrace) {
		if _, err := p.parseBlockStatement(node); err != nil {
			return 0, err
		}
	} else {
		if _, err := p.parseExpression(node); err != nil {
			return 0, err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseLambdaParameter parses one lambda parameter: a bare name, a
// "var"-inferred name, or an explicitly typed parameter.
func (p *Parser) parseLambdaParameter(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindParameter, parent)

	if p.at(lexer.TokenFinal) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenVar) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	} else if !isIdentifierLike(p.current().Kind) {
		return 0, p.unexpected("a lambda parameter")
	} else if p.peekAt(1).Kind != lexer.TokenComma && p.peekAt(1).Kind != lexer.TokenRParen {
		// An identifier not immediately followed by ',' or ')' is an
		// explicit parameter type, not the parameter name itself.
		if _, err := p.parseType(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parsePrimitiveClassLiteral parses "int.class", "int[].class" and
// similar primitive/array class literals.
func (p *Parser) parsePrimitiveClassLiteral(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	baseType, err := p.parsePrimitiveType(arena.NoParent)
	if err != nil {
		return 0, err
	}
	baseType, err = p.parseArrayDimensions(baseType, start, arena.NoParent)
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenDot); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenClass); err != nil {
		return 0, err
	}
	node := p.allocate(start, ast.KindClassLiteralExpression, parent)
	p.arena.AdoptChild(node, baseType)
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseObjectOrArrayCreation parses a "new" expression: object creation
// (with an optional anonymous class body) or array creation (with
// dimension expressions and/or an array initializer).
// The element type is parsed under a disconnected placeholder and then
// adopted into whichever creation-node kind turns out to be correct,
// since that kind is only known once what follows the type is seen.
func (p *Parser) parseObjectOrArrayCreation(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'new'
		return 0, err
	}

	if p.at(lexer.TokenLt) {
		p.skipTypeWitness()
	}

	elemStart := uint32(p.current().StartOffset)
	baseType, err := p.parseSingleType(arena.NoParent)
	if err != nil {
		return 0, err
	}
	_ = elemStart

	if p.at(lexer.TokenLBracket) {
		return p.parseArrayCreationTail(parent, start, baseType)
	}

	node := p.allocate(start, ast.KindObjectCreationExpression, parent)
	p.arena.AdoptChild(node, baseType)
	if _, err := p.parseArgumentList(node); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenLBrace) {
		bodyStart := uint32(p.current().StartOffset)
		body := p.allocate(bodyStart, ast.KindAnonymousClassBody, node)
		if err := p.parseClassBodyMembers(body); err != nil {
			return 0, err
		}
		p.finalize(body, uint32(p.previousEnd()))
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// skipTypeWitness consumes an explicit constructor type witness
// ("new <T> Foo(...)"), which is rare enough in real code that its
// operands are parsed into a scratch region and discarded rather than
// threaded into the creation node.
func (p *Parser) skipTypeWitness() {
	mark := p.arena.Mark()
	scratch := p.allocate(uint32(p.current().StartOffset), ast.KindInvalid, arena.NoParent)
	if _, err := p.parseTypeArguments(scratch); err != nil {
		// Leave the cursor where the failed trial parse left it; the
		// caller's subsequent parseSingleType will surface a proper error.
	}
	p.arena.Truncate(mark)
}

func (p *Parser) parseArrayCreationTail(parent int32, start uint32, baseType int32) (int32, *errors.Error) {
	node := p.allocate(start, ast.KindArrayCreationExpression, parent)
	p.arena.AdoptChild(node, baseType)

	for p.at(lexer.TokenLBracket) {
		if _, err := p.advance(); err != nil { // '['
			return 0, err
		}
		if p.at(lexer.TokenRBracket) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			continue
		}
		if _, err := p.parseExpression(node); err != nil {
			return 0, err
		}
		if _, err := p.expect(lexer.TokenRBracket); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenLBrace) {
		if _, err := p.parseArrayInitializer(node); err != nil {
			return 0, err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseArrayInitializer parses "{" (VariableInitializer (','...)* ','?)? "}",
// where each element is either an expression or a nested initializer.
func (p *Parser) parseArrayInitializer(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindArrayInitializer, parent)
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRBrace) {
		if p.at(lexer.TokenLBrace) {
			if _, err := p.parseArrayInitializer(node); err != nil {
				return 0, err
			}
		} else {
			if _, err := p.parseExpression(node); err != nil {
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
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseSwitchExpression parses a switch used as an expression (JEP 361):
// both arrow-rule and colon-label bodies are accepted, since a single
// construct backs both the statement and expression forms until the
// caller's context decides which is expected.
func (p *Parser) parseSwitchExpression(parent int32) (int32, *errors.Error) {
	return p.parseSwitchCommon(parent, ast.KindSwitchExpression)
}
