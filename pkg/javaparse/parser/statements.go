package parser

import (
	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

// parseBlockStatement parses "{" Statement* "}".
func (p *Parser) parseBlockStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindBlockStatement, parent)
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRBrace) && !p.atEOF() {
		if _, err := p.parseStatement(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseStatement dispatches on the current token to the matching statement
// form. Statement recursion (blocks inside blocks, nested if/for/while)
// is bounded by the same depth guard as expressions.
func (p *Parser) parseStatement(parent int32) (int32, *errors.Error) {
	if err := p.enterDepth(); err != nil {
		return 0, err
	}
	defer p.exitDepth()

	switch p.current().Kind {
	case lexer.TokenLBrace:
		return p.parseBlockStatement(parent)
	case lexer.TokenIf:
		return p.parseIfStatement(parent)
	case lexer.TokenFor:
		return p.parseForStatement(parent)
	case lexer.TokenWhile:
		return p.parseWhileStatement(parent)
	case lexer.TokenDo:
		return p.parseDoWhileStatement(parent)
	case lexer.TokenSwitch:
		return p.parseSwitchCommon(parent, ast.KindSwitchStatement)
	case lexer.TokenTry:
		return p.parseTryStatement(parent)
	case lexer.TokenSynchronized:
		return p.parseSynchronizedStatement(parent)
	case lexer.TokenReturn:
		return p.parseReturnStatement(parent)
	case lexer.TokenThrow:
		return p.parseThrowStatement(parent)
	case lexer.TokenBreak:
		return p.parseBreakOrContinueStatement(parent, ast.KindBreakStatement)
	case lexer.TokenContinue:
		return p.parseBreakOrContinueStatement(parent, ast.KindContinueStatement)
	case lexer.TokenAssert:
		return p.parseAssertStatement(parent)
	case lexer.TokenYield:
		return p.parseYieldStatement(parent)
	case lexer.TokenSemicolon:
		start := uint32(p.current().StartOffset)
		node := p.allocate(start, ast.KindEmptyStatement, parent)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return node, nil
	case lexer.TokenClass, lexer.TokenInterface, lexer.TokenEnum, lexer.TokenRecord, lexer.TokenAt:
		return p.parseLocalTypeStatement(parent)
	}

	if isIdentifierLike(p.current().Kind) && p.peekAt(1).Kind == lexer.TokenColon {
		return p.parseLabeledStatement(parent)
	}

	return p.parseLocalVariableOrExpressionStatement(parent)
}

func (p *Parser) parseIfStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'if'
		return 0, err
	}
	node := p.allocate(start, ast.KindIfStatement, parent)
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.parseStatement(node); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenElse) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if _, err := p.parseStatement(node); err != nil {
			return 0, err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseWhileStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'while'
		return 0, err
	}
	node := p.allocate(start, ast.KindWhileStatement, parent)
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.parseStatement(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseDoWhileStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'do'
		return 0, err
	}
	node := p.allocate(start, ast.KindDoWhileStatement, parent)
	if _, err := p.parseStatement(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenWhile); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseForStatement disambiguates the classic three-clause form from the
// enhanced (for-each) form by a bounded lookahead for a top-level ':'
// before the first ';' inside the parentheses.
func (p *Parser) parseForStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'for'
		return 0, err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if p.looksLikeEnhancedFor() {
		return p.parseEnhancedForTail(parent, start)
	}

	node := p.allocate(start, ast.KindForStatement, parent)
	if !p.at(lexer.TokenSemicolon) {
		save := p.mark()
		if _, ok := p.tryParseVariableDeclaration(node, ast.KindLocalVariableStatement); !ok {
			p.reset(save)
			for {
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
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	if !p.at(lexer.TokenSemicolon) {
		if _, err := p.parseExpression(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	if !p.at(lexer.TokenRParen) {
		for {
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
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.parseStatement(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// looksLikeEnhancedFor scans from just inside "for (" for a top-level ':'
// before a top-level ';', tracking bracket/paren/angle nesting so nested
// generics and array dims don't confuse the scan.
func (p *Parser) looksLikeEnhancedFor() bool {
	depth := 0
	for i := 0; i < 4096; i++ {
		tok := p.peekAt(i)
		if tok.IsEOF() {
			return false
		}
		switch tok.Kind {
		case lexer.TokenLt, lexer.TokenLBracket, lexer.TokenLParen:
			depth++
		case lexer.TokenGt:
			if depth > 0 {
				depth--
			}
		case lexer.TokenShr:
			if depth >= 2 {
				depth -= 2
			} else {
				depth = 0
			}
		case lexer.TokenRBracket:
			if depth > 0 {
				depth--
			}
		case lexer.TokenRParen:
			if depth == 0 {
				return false
			}
			depth--
		case lexer.TokenColon:
			if depth == 0 {
				return true
			}
		case lexer.TokenSemicolon:
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseEnhancedForTail(parent int32, start uint32) (int32, *errors.Error) {
	node := p.allocate(start, ast.KindEnhancedForStatement, parent)
	if p.at(lexer.TokenFinal) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	}
	for p.at(lexer.TokenAt) {
		if err := p.skipAnnotationToken(); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenVar) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	} else if _, err := p.parseType(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.parseStatement(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseSynchronizedStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'synchronized'
		return 0, err
	}
	node := p.allocate(start, ast.KindSynchronizedStatement, parent)
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.parseBlockStatement(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseTryStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'try'
		return 0, err
	}
	node := p.allocate(start, ast.KindTryStatement, parent)

	if p.at(lexer.TokenLParen) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		for {
			if err := p.parseResourceDeclaration(node); err != nil {
				return 0, err
			}
			if p.at(lexer.TokenSemicolon) {
				if _, err := p.advance(); err != nil {
					return 0, err
				}
				if p.at(lexer.TokenRParen) {
					break
				}
				continue
			}
			break
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return 0, err
		}
	}

	if _, err := p.parseBlockStatement(node); err != nil {
		return 0, err
	}
	for p.at(lexer.TokenCatch) {
		if _, err := p.parseCatchClause(node); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenFinally) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if _, err := p.parseBlockStatement(node); err != nil {
			return 0, err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseResourceDeclaration parses one try-with-resources resource: a
// "var"-inferred or explicitly typed declarator initialized to an
// expression, or (JDK 9+) a bare reference to an already effectively-final
// variable.
func (p *Parser) parseResourceDeclaration(parent int32) *errors.Error {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindResourceDeclaration, parent)
	if p.at(lexer.TokenFinal) {
		if _, err := p.advance(); err != nil {
			return err
		}
	}
	for p.at(lexer.TokenAt) {
		if err := p.skipAnnotationToken(); err != nil {
			return err
		}
	}
	if p.at(lexer.TokenVar) {
		if _, err := p.advance(); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenAssign); err != nil {
			return err
		}
		if _, err := p.parseExpression(node); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}

	save := p.mark()
	if _, err := p.parseType(node); err == nil && isIdentifierLike(p.current().Kind) && p.peekAt(1).Kind == lexer.TokenAssign {
		if _, err := p.advance(); err != nil { // identifier
			return err
		}
		if _, err := p.advance(); err != nil { // '='
			return err
		}
		if _, err := p.parseExpression(node); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}
	p.reset(save)
	if _, err := p.parseExpression(node); err != nil {
		return err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

func (p *Parser) parseCatchClause(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'catch'
		return 0, err
	}
	node := p.allocate(start, ast.KindCatchClause, parent)
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenFinal) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	}
	for p.at(lexer.TokenAt) {
		if err := p.skipAnnotationToken(); err != nil {
			return 0, err
		}
	}
	// The first type is parsed disconnected, since whether it needs
	// wrapping in a KindUnionType node is only known once it is seen
	// whether a '|' follows.
	typeStart := uint32(p.current().StartOffset)
	firstType, err := p.parseType(arena.NoParent)
	if err != nil {
		return 0, err
	}
	if p.at(lexer.TokenPipe) {
		union := p.allocate(typeStart, ast.KindUnionType, node)
		p.arena.AdoptChild(union, firstType)
		for p.at(lexer.TokenPipe) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			if _, err := p.parseType(union); err != nil {
				return 0, err
			}
		}
		p.finalize(union, uint32(p.previousEnd()))
	} else {
		p.arena.AdoptChild(node, firstType)
	}
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.parseBlockStatement(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseReturnStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'return'
		return 0, err
	}
	node := p.allocate(start, ast.KindReturnStatement, parent)
	if !p.at(lexer.TokenSemicolon) && !p.at(lexer.TokenRBrace) {
		if _, err := p.parseExpression(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseThrowStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'throw'
		return 0, err
	}
	node := p.allocate(start, ast.KindThrowStatement, parent)
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseYieldStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'yield'
		return 0, err
	}
	node := p.allocate(start, ast.KindYieldStatement, parent)
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseBreakOrContinueStatement(parent int32, kind ast.NodeKind) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'break' or 'continue'
		return 0, err
	}
	node := p.allocate(start, kind, parent)
	if p.at(lexer.TokenIdentifier) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseAssertStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'assert'
		return 0, err
	}
	node := p.allocate(start, ast.KindAssertStatement, parent)
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenColon) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if _, err := p.parseExpression(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseLabeledStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindLabeledStatement, parent)
	if _, err := p.advance(); err != nil { // label identifier
		return 0, err
	}
	if _, err := p.advance(); err != nil { // ':'
		return 0, err
	}
	if _, err := p.parseStatement(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseLocalTypeStatement wraps a local class/interface/enum/record
// declaration (JLS §14.3) in its statement-level node. Member parsing is
// shared with top-level type declarations (declarations.go).
func (p *Parser) parseLocalTypeStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindLocalClassStatement, parent)
	if _, err := p.parseTypeDeclaration(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseLocalVariableOrExpressionStatement disambiguates "Type x =...;"
// from an expression statement by a trial parse with full backtracking,
// including the arena nodes it speculatively allocated.
func (p *Parser) parseLocalVariableOrExpressionStatement(parent int32) (int32, *errors.Error) {
	save := p.mark()
	if node, ok := p.tryParseVariableDeclaration(parent, ast.KindLocalVariableStatement); ok {
		if _, err := p.expect(lexer.TokenSemicolon); err == nil {
			p.finalize(node, uint32(p.previousEnd()))
			return node, nil
		}
	}
	p.reset(save)
	return p.parseExpressionStatement(parent)
}

func (p *Parser) parseExpressionStatement(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindExpressionStatement, parent)
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// tryParseVariableDeclaration parses "[final] [annotations] (var|Type)
// declarator (',' declarator)*" without consuming a trailing terminator,
// so callers that need different terminators (';' for statements and
// for-init, none for try-with-resources-adjacent contexts) can share it.
// ok is false when the current token cannot start a declaration at all,
// or when what follows a successfully parsed type is not a declarator
// name — the caller is expected to have saved a checkpoint and resets it
// on failure.
func (p *Parser) tryParseVariableDeclaration(parent int32, kind ast.NodeKind) (int32, bool) {
	tok := p.current().Kind
	if !(tok == lexer.TokenVar || tok == lexer.TokenFinal || tok == lexer.TokenAt ||
		primitiveTypeKinds[tok] || isIdentifierLike(tok)) {
		return 0, false
	}

	start := uint32(p.current().StartOffset)
	node := p.allocate(start, kind, parent)

	for p.at(lexer.TokenFinal) {
		if _, err := p.advance(); err != nil {
			return 0, false
		}
	}
	for p.at(lexer.TokenAt) {
		if err := p.skipAnnotationToken(); err != nil {
			return 0, false
		}
	}

	if p.at(lexer.TokenVar) {
		if _, err := p.advance(); err != nil {
			return 0, false
		}
	} else {
		if _, err := p.parseType(node); err != nil {
			return 0, false
		}
	}

	if !isIdentifierLike(p.current().Kind) {
		return 0, false
	}

	for {
		declStart := uint32(p.current().StartOffset)
		decl := p.allocate(declStart, ast.KindVariableDeclarator, node)
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return 0, false
		}
		for p.at(lexer.TokenLBracket) && p.peekAt(1).Kind == lexer.TokenRBracket {
			if _, err := p.advance(); err != nil {
				return 0, false
			}
			if _, err := p.advance(); err != nil {
				return 0, false
			}
		}
		if p.at(lexer.TokenAssign) {
			if _, err := p.advance(); err != nil {
				return 0, false
			}
			if p.at(lexer.TokenLBrace) {
				if _, err := p.parseArrayInitializer(decl); err != nil {
					return 0, false
				}
			} else if _, err := p.parseExpression(decl); err != nil {
				return 0, false
			}
		}
		p.finalize(decl, uint32(p.previousEnd()))
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return 0, false
			}
			continue
		}
		break
	}
	return node, true
}

// skipAnnotationToken consumes one "@" Name ["("... ")"] marker without
// building an AST node for it — a deliberate simplification for
// modifier-position annotations on locals, parameters and resources,
// where nothing downstream yet consumes annotation contents. Annotations
// on declared members get full node-backed parsing in declarations.go.
func (p *Parser) skipAnnotationToken() *errors.Error {
	if _, err := p.advance(); err != nil { // '@'
		return err
	}
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return err
	}
	for p.at(lexer.TokenDot) {
		if _, err := p.advance(); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return err
		}
	}
	if !p.at(lexer.TokenLParen) {
		return nil
	}
	depth := 0
	for {
		if p.atEOF() {
			return p.unexpected("')'")
		}
		switch p.current().Kind {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth == 0 {
				_, err := p.advance()
				return err
			}
		}
		if _, err := p.advance(); err != nil {
			return err
		}
	}
}

// parseSwitchCommon parses the shared switch body grammar (JEP 361) used
// by both the statement and expression forms, distinguished only by the
// node kind the caller asks for.
func (p *Parser) parseSwitchCommon(parent int32, kind ast.NodeKind) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'switch'
		return 0, err
	}
	node := p.allocate(start, kind, parent)
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	if _, err := p.parseExpression(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRBrace) && !p.atEOF() {
		if _, err := p.parseSwitchBlock(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseSwitchBlock parses one "case... ->|:'" group (including its
// guard and body) as a single KindSwitchRule child of the switch node.
func (p *Parser) parseSwitchBlock(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	label := p.allocate(start, ast.KindSwitchLabel, parent)

	if p.at(lexer.TokenDefault) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	} else if _, err := p.expect(lexer.TokenCase); err != nil {
		return 0, err
	} else {
		for {
			if p.at(lexer.TokenDefault) {
				if _, err := p.advance(); err != nil {
					return 0, err
				}
			} else if p.at(lexer.TokenNullLiteral) {
				lit := p.allocate(uint32(p.current().StartOffset), ast.KindNullLiteral, label)
				if _, err := p.advance(); err != nil {
					return 0, err
				}
				p.finalize(lit, uint32(p.previousEnd()))
			} else if _, err := p.parsePatternOrType(label); err != nil {
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
	}
	p.finalize(label, uint32(p.previousEnd()))

	target := label
	if p.at(lexer.TokenWhen) {
		guard := p.allocate(start, ast.KindGuardExpression, parent)
		p.arena.AdoptChild(guard, label)
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if _, err := p.parseExpression(guard); err != nil {
			return 0, err
		}
		p.finalize(guard, uint32(p.previousEnd()))
		target = guard
	}

	rule := p.allocate(start, ast.KindSwitchRule, parent)
	p.arena.AdoptChild(rule, target)

	if p.at(lexer.TokenArrow) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		switch {
		case p.at(lexer.TokenLBrace):
			if _, err := p.parseBlockStatement(rule); err != nil {
				return 0, err
			}
		case p.at(lexer.TokenThrow):
			if _, err := p.parseThrowStatement(rule); err != nil {
				return 0, err
			}
		default:
			if _, err := p.parseExpression(rule); err != nil {
				return 0, err
			}
			if _, err := p.expect(lexer.TokenSemicolon); err != nil {
				return 0, err
			}
		}
	} else if _, err := p.expect(lexer.TokenColon); err == nil {
		for !p.at(lexer.TokenCase) && !p.at(lexer.TokenDefault) &&
			!p.at(lexer.TokenRBrace) && !p.atEOF() {
			if _, err := p.parseStatement(rule); err != nil {
				return 0, err
			}
		}
	} else {
		return 0, err
	}
	p.finalize(rule, uint32(p.previousEnd()))
	return rule, nil
}
