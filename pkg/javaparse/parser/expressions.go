package parser

import (
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

var assignmentOps = map[lexer.TokenKind]bool{
	lexer.TokenAssign: true, lexer.TokenPlusEq: true, lexer.TokenMinusEq: true,
	lexer.TokenStarEq: true, lexer.TokenSlashEq: true, lexer.TokenPercentEq: true,
	lexer.TokenAmpEq: true, lexer.TokenPipeEq: true, lexer.TokenCaretEq: true,
	lexer.TokenShlEq: true, lexer.TokenShrEq: true, lexer.TokenUshrEq: true,
}

// parseExpression is the entry point for the full precedence climb
//. Expression parsing recurses the deepest of any
// production in the grammar, so every level re-checks the deadline on
// entry in addition to the depth cap.
func (p *Parser) parseExpression(parent int32) (int32, *errors.Error) {
	if err := p.enterDepth(); err != nil {
		return 0, err
	}
	defer p.exitDepth()
	return p.parseAssignment(parent)
}

func (p *Parser) parseAssignment(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	left, err := p.parseTernary(parent)
	if err != nil {
		return 0, err
	}
	if !assignmentOps[p.current().Kind] {
		return left, nil
	}
	node := p.allocate(start, ast.KindAssignmentExpression, parent)
	p.arena.AdoptChild(node, left)
	if _, err := p.advance(); err != nil { // operator
		return 0, err
	}
	if _, err := p.parseAssignment(node); err != nil { // right-assoc
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseTernary(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	cond, err := p.parseLogicalOr(parent)
	if err != nil {
		return 0, err
	}
	if !p.at(lexer.TokenQuestion) {
		return cond, nil
	}
	node := p.allocate(start, ast.KindTernaryExpression, parent)
	p.arena.AdoptChild(node, cond)
	if _, err := p.advance(); err != nil { // '?'
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return 0, err
	}
	if _, err := p.parseAssignment(node); err != nil { // right-assoc
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func opSet(kinds...lexer.TokenKind) map[lexer.TokenKind]bool {
	m := make(map[lexer.TokenKind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// parseLeftAssoc implements one left-associative precedence level: parse
// an operand at the next-higher level, then while the current token is
// one of ops, wrap the accumulated left side in a new binary-expression
// node and parse another operand. The wrapper's need only becomes known
// after its left operand already exists, so AdoptChild reparents it
// rather than the wrapper being the operand's parent from the start.
func (p *Parser) parseLeftAssoc(parent int32, ops map[lexer.TokenKind]bool, next func(*Parser, int32) (int32, *errors.Error)) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	left, err := next(p, parent)
	if err != nil {
		return 0, err
	}
	for ops[p.current().Kind] {
		node := p.allocate(start, ast.KindBinaryExpression, parent)
		p.arena.AdoptChild(node, left)
		if _, err := p.advance(); err != nil { // operator
			return 0, err
		}
		if _, err := next(p, node); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		left = node
	}
	return left, nil
}

func (p *Parser) parseLogicalOr(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenOrOr), (*Parser).parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenAndAnd), (*Parser).parseBitwiseOr)
}

func (p *Parser) parseBitwiseOr(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenPipe), (*Parser).parseBitwiseXor)
}

func (p *Parser) parseBitwiseXor(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenCaret), (*Parser).parseBitwiseAnd)
}

func (p *Parser) parseBitwiseAnd(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenAmp), (*Parser).parseEquality)
}

func (p *Parser) parseEquality(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenEqEq, lexer.TokenNotEq), (*Parser).parseRelational)
}

// parseRelational handles <, >, <=, >= and instanceof, which shares this
// level per the grammar.
func (p *Parser) parseRelational(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	left, err := p.parseShift(parent)
	if err != nil {
		return 0, err
	}
	for {
		if p.at(lexer.TokenInstanceof) {
			node := p.allocate(start, ast.KindInstanceofExpression, parent)
			p.arena.AdoptChild(node, left)
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if p.at(lexer.TokenFinal) {
				if _, err := p.advance(); err != nil {
					return 0, err
				}
			}
			if _, err := p.parsePatternOrType(node); err != nil {
				return 0, err
			}
			p.finalize(node, uint32(p.previousEnd()))
			left = node
			continue
		}
		if p.current().Kind == lexer.TokenLt || p.current().Kind == lexer.TokenLe ||
			p.current().Kind == lexer.TokenGt || p.current().Kind == lexer.TokenGe {
			node := p.allocate(start, ast.KindBinaryExpression, parent)
			p.arena.AdoptChild(node, left)
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if _, err := p.parseShift(node); err != nil {
				return 0, err
			}
			p.finalize(node, uint32(p.previousEnd()))
			left = node
			continue
		}
		break
	}
	return left, nil
}

// parsePatternOrType parses the instanceof operand: either a pattern
// (type pattern, record pattern, primitive pattern — JEP 507) or a
// plain type reference.
func (p *Parser) parsePatternOrType(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	typeNode, err := p.parseType(parent)
	if err != nil {
		return 0, err
	}
	if p.at(lexer.TokenLParen) {
		return p.parseRecordPatternTail(typeNode, start, parent)
	}
	if p.at(lexer.TokenIdentifier) {
		kind := ast.KindTypePattern
		if p.arena.Kind(typeNode) == ast.KindPrimitiveType {
			kind = ast.KindPrimitivePattern
		}
		pat := p.allocate(start, kind, parent)
		if _, err := p.advance(); err != nil { // binding name
			return 0, err
		}
		p.finalize(pat, uint32(p.previousEnd()))
		return pat, nil
	}
	return typeNode, nil
}

func (p *Parser) parseRecordPatternTail(typeNode int32, start uint32, parent int32) (int32, *errors.Error) {
	node := p.allocate(start, ast.KindRecordPattern, parent)
	if _, err := p.advance(); err != nil { // '('
		return 0, err
	}
	for !p.at(lexer.TokenRParen) {
		if p.at(lexer.TokenVar) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if _, err := p.expect(lexer.TokenIdentifier); err != nil {
				return 0, err
			}
		} else if _, err := p.parsePatternOrType(node); err != nil {
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
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseShift(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenShl, lexer.TokenShr, lexer.TokenUshr), (*Parser).parseAdditive)
}

func (p *Parser) parseAdditive(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenPlus, lexer.TokenMinus), (*Parser).parseMultiplicative)
}

func (p *Parser) parseMultiplicative(parent int32) (int32, *errors.Error) {
	return p.parseLeftAssoc(parent, opSet(lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent), (*Parser).parseUnary)
}

var unaryPrefixOps = opSet(lexer.TokenPlus, lexer.TokenMinus, lexer.TokenBang,
	lexer.TokenTilde, lexer.TokenPlusPlus, lexer.TokenMinusMinus)

func (p *Parser) parseUnary(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)

	if p.current().Kind == lexer.TokenLParen {
		if node, matched, err := p.tryParseCast(parent, start); matched {
			return node, err
		}
	}

	if unaryPrefixOps[p.current().Kind] {
		node := p.allocate(start, ast.KindUnaryExpression, parent)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if _, err := p.parseUnary(node); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return node, nil
	}
	return p.parsePostfix(parent)
}

// canStartUnaryAfterCast reports whether kind is in the token set
// allowed to follow a cast's closing ')': full set for primitive casts,
// the not-plus-minus subset for reference/intersection casts (JLS
// §15.16).
func canStartUnaryAfterCast(kind lexer.TokenKind, primitiveCast bool) bool {
	switch kind {
	case lexer.TokenPlus, lexer.TokenMinus:
		return primitiveCast
	case lexer.TokenIdentifier, lexer.TokenLParen, lexer.TokenBang, lexer.TokenTilde,
		lexer.TokenPlusPlus, lexer.TokenMinusMinus, lexer.TokenThis, lexer.TokenSuper,
		lexer.TokenNew, lexer.TokenIntegerLiteral, lexer.TokenLongLiteral,
		lexer.TokenFloatLiteral, lexer.TokenDoubleLiteral, lexer.TokenStringLiteral,
		lexer.TokenTextBlockLiteral, lexer.TokenCharLiteral, lexer.TokenBooleanLiteral,
		lexer.TokenNullLiteral, lexer.TokenSwitch:
		return true
	}
	return primitiveCast && (isIdentifierLike(kind))
}

// tryParseCast implements the cast/parenthesized/lambda disambiguation.
// matched is false when the '(' does not lead to a cast, in which case
// the caller falls through to lambda/parenthesized parsing without
// having consumed anything.
func (p *Parser) tryParseCast(parent int32, start uint32) (int32, bool, *errors.Error) {
	save := p.mark()

	primitiveCast := primitiveTypeKinds[p.peekAt(1).Kind]
	if !primitiveCast && !isIdentifierLike(p.peekAt(1).Kind) {
		return 0, false, nil
	}

	node := p.allocate(start, ast.KindCastExpression, parent)
	if _, err := p.advance(); err != nil { // '('
		p.reset(save)
		return 0, false, nil
	}
	if _, err := p.parseType(node); err != nil {
		p.reset(save)
		return 0, false, nil
	}
	if !p.at(lexer.TokenRParen) {
		p.reset(save)
		return 0, false, nil
	}
	if _, err := p.advance(); err != nil { // ')'
		p.reset(save)
		return 0, false, nil
	}
	if !canStartUnaryAfterCast(p.current().Kind, primitiveCast) {
		p.reset(save)
		return 0, false, nil
	}
	if _, err := p.parseUnary(node); err != nil {
		return 0, true, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, true, nil
}

func (p *Parser) parsePostfix(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node, err := p.parsePrimary(parent)
	if err != nil {
		return 0, err
	}
	for {
		switch p.current().Kind {
		case lexer.TokenDot:
			node, err = p.parseFieldOrMethodAccess(node, start, parent)
			if err != nil {
				return 0, err
			}
		case lexer.TokenLBracket:
			idx := p.allocate(start, ast.KindArrayAccessExpression, parent)
			p.arena.AdoptChild(idx, node)
			if _, err := p.advance(); err != nil { // '['
				return 0, err
			}
			if _, err := p.parseExpression(idx); err != nil {
				return 0, err
			}
			if _, err := p.expect(lexer.TokenRBracket); err != nil {
				return 0, err
			}
			p.finalize(idx, uint32(p.previousEnd()))
			node = idx
		case lexer.TokenColonColon:
			ref := p.allocate(start, ast.KindMethodReferenceExpression, parent)
			p.arena.AdoptChild(ref, node)
			if _, err := p.advance(); err != nil { // '::'
				return 0, err
			}
			if p.at(lexer.TokenNew) {
				if _, err := p.advance(); err != nil {
					return 0, err
				}
			} else if _, err := p.expect(lexer.TokenIdentifier); err != nil {
				return 0, err
			}
			p.finalize(ref, uint32(p.previousEnd()))
			node = ref
		case lexer.TokenPlusPlus, lexer.TokenMinusMinus:
			post := p.allocate(start, ast.KindPostfixExpression, parent)
			p.arena.AdoptChild(post, node)
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			p.finalize(post, uint32(p.previousEnd()))
			node = post
		default:
			return node, nil
		}
	}
}

func (p *Parser) parseFieldOrMethodAccess(base int32, start uint32, parent int32) (int32, *errors.Error) {
	if _, err := p.advance(); err != nil { // '.'
		return 0, err
	}
	if p.at(lexer.TokenLt) {
		if _, err := p.parseTypeArguments(parent); err != nil { // explicit method type args
			return 0, err
		}
	}
	if _, err := p.advance(); err != nil { // identifier, 'this', 'super', 'new', or 'class'
		return 0, err
	}
	if p.at(lexer.TokenLParen) {
		call := p.allocate(start, ast.KindMethodInvocationExpression, parent)
		p.arena.AdoptChild(call, base)
		if _, err := p.parseArgumentList(call); err != nil {
			return 0, err
		}
		p.finalize(call, uint32(p.previousEnd()))
		return call, nil
	}
	access := p.allocate(start, ast.KindFieldAccessExpression, parent)
	p.arena.AdoptChild(access, base)
	p.finalize(access, uint32(p.previousEnd()))
	return access, nil
}

func (p *Parser) parseArgumentList(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindArgumentList, parent)
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRParen) {
		if _, err := p.parseExpression(node); err != nil {
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
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}
