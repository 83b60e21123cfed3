package parser

import (
	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

var modifierTokens = map[lexer.TokenKind]bool{
	lexer.TokenPublic: true, lexer.TokenPrivate: true, lexer.TokenProtected: true,
	lexer.TokenStatic: true, lexer.TokenFinal: true, lexer.TokenAbstract: true,
	lexer.TokenNative: true, lexer.TokenTransient: true, lexer.TokenVolatile: true,
	lexer.TokenStrictfp: true, lexer.TokenSynchronized: true,
	lexer.TokenSealed: true, lexer.TokenNonSealed: true, lexer.TokenDefault: true,
}

// parseModifierList consumes a run of modifier keywords and annotations,
// building real Annotation nodes but no per-modifier
// nodes for the bare keywords — their presence is recoverable from the
// source span. The caller adopts the result into whatever declaration
// node it turns out to precede, since that node's kind is only known
// once the modifiers have been read past.
func (p *Parser) parseModifierList(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindModifierList, parent)
	for {
		if p.at(lexer.TokenAt) && p.peekAt(1).Kind == lexer.TokenInterface {
			break
		}
		if p.at(lexer.TokenAt) {
			if err := p.parseAnnotation(node); err != nil {
				return 0, err
			}
			continue
		}
		if modifierTokens[p.current().Kind] {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			continue
		}
		break
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseAnnotation parses "@" Name ["(" (single value | name=value pairs) ")"]
//, including a nested annotation as an argument value.
func (p *Parser) parseAnnotation(parent int32) *errors.Error {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindAnnotation, parent)
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
	if p.at(lexer.TokenLParen) {
		if _, err := p.advance(); err != nil {
			return err
		}
		for !p.at(lexer.TokenRParen) {
			argStart := uint32(p.current().StartOffset)
			arg := p.allocate(argStart, ast.KindAnnotationArgument, node)
			if isIdentifierLike(p.current().Kind) && p.peekAt(1).Kind == lexer.TokenAssign {
				if _, err := p.advance(); err != nil { // name
					return err
				}
				if _, err := p.advance(); err != nil { // '='
					return err
				}
			}
			switch {
			case p.at(lexer.TokenLBrace):
				if _, err := p.parseArrayInitializer(arg); err != nil {
					return err
				}
			case p.at(lexer.TokenAt):
				if err := p.parseAnnotation(arg); err != nil {
					return err
				}
			default:
				if _, err := p.parseExpression(arg); err != nil {
					return err
				}
			}
			p.finalize(arg, uint32(p.previousEnd()))
			if p.at(lexer.TokenComma) {
				if _, err := p.advance(); err != nil {
					return err
				}
				continue
			}
			break
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

// parseTypeDeclaration dispatches a class/interface/enum/record/annotation
// declaration, including nested and local ones.
func (p *Parser) parseTypeDeclaration(parent int32) (int32, *errors.Error) {
	modNode, err := p.parseModifierList(arena.NoParent)
	if err != nil {
		return 0, err
	}
	switch {
	case p.at(lexer.TokenClass):
		return p.parseClassDeclaration(parent, modNode)
	case p.at(lexer.TokenInterface):
		return p.parseInterfaceDeclaration(parent, modNode)
	case p.at(lexer.TokenEnum):
		return p.parseEnumDeclaration(parent, modNode)
	case p.at(lexer.TokenRecord) && isIdentifierLike(p.peekAt(1).Kind):
		return p.parseRecordDeclaration(parent, modNode)
	case p.at(lexer.TokenAt) && p.peekAt(1).Kind == lexer.TokenInterface:
		return p.parseAnnotationDeclaration(parent, modNode)
	}
	return 0, p.unexpected("a type declaration")
}

func (p *Parser) parseClassDeclaration(parent, modNode int32) (int32, *errors.Error) {
	start := p.arena.Start(modNode)
	if _, err := p.advance(); err != nil { // 'class'
		return 0, err
	}
	node := p.allocate(start, ast.KindClassDeclaration, parent)
	p.arena.AdoptChild(node, modNode)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenLt) {
		if err := p.parseTypeParameterList(node); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenExtends) {
		if err := p.parseSingleSupertypeClause(node, ast.KindExtendsClause); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenImplements) {
		if err := p.parseSupertypeListClause(node, ast.KindImplementsClause); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenPermits) {
		if err := p.parseSupertypeListClause(node, ast.KindPermitsClause); err != nil {
			return 0, err
		}
	}
	if err := p.parseClassBodyMembers(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseInterfaceDeclaration(parent, modNode int32) (int32, *errors.Error) {
	start := p.arena.Start(modNode)
	if _, err := p.advance(); err != nil { // 'interface'
		return 0, err
	}
	node := p.allocate(start, ast.KindInterfaceDeclaration, parent)
	p.arena.AdoptChild(node, modNode)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenLt) {
		if err := p.parseTypeParameterList(node); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenExtends) {
		if err := p.parseSupertypeListClause(node, ast.KindExtendsClause); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenPermits) {
		if err := p.parseSupertypeListClause(node, ast.KindPermitsClause); err != nil {
			return 0, err
		}
	}
	if err := p.parseClassBodyMembers(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseEnumDeclaration(parent, modNode int32) (int32, *errors.Error) {
	start := p.arena.Start(modNode)
	if _, err := p.advance(); err != nil { // 'enum'
		return 0, err
	}
	node := p.allocate(start, ast.KindEnumDeclaration, parent)
	p.arena.AdoptChild(node, modNode)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenImplements) {
		if err := p.parseSupertypeListClause(node, ast.KindImplementsClause); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return 0, err
	}
	for {
		if !(isIdentifierLike(p.current().Kind) || p.at(lexer.TokenAt)) {
			break
		}
		constStart := uint32(p.current().StartOffset)
		constNode := p.allocate(constStart, ast.KindEnumConstant, node)
		for p.at(lexer.TokenAt) {
			if err := p.parseAnnotation(constNode); err != nil {
				return 0, err
			}
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return 0, err
		}
		if p.at(lexer.TokenLParen) {
			if _, err := p.parseArgumentList(constNode); err != nil {
				return 0, err
			}
		}
		if p.at(lexer.TokenLBrace) {
			bodyStart := uint32(p.current().StartOffset)
			body := p.allocate(bodyStart, ast.KindAnonymousClassBody, constNode)
			if err := p.parseClassBodyMembers(body); err != nil {
				return 0, err
			}
			p.finalize(body, uint32(p.previousEnd()))
		}
		p.finalize(constNode, uint32(p.previousEnd()))
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
			continue
		}
		break
	}
	if p.at(lexer.TokenSemicolon) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		for !p.at(lexer.TokenRBrace) && !p.atEOF() {
			if err := p.parseMember(node); err != nil {
				return 0, err
			}
		}
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseRecordDeclaration(parent, modNode int32) (int32, *errors.Error) {
	start := p.arena.Start(modNode)
	if _, err := p.advance(); err != nil { // 'record'
		return 0, err
	}
	node := p.allocate(start, ast.KindRecordDeclaration, parent)
	p.arena.AdoptChild(node, modNode)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if p.at(lexer.TokenLt) {
		if err := p.parseTypeParameterList(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRParen) {
		compStart := uint32(p.current().StartOffset)
		comp := p.allocate(compStart, ast.KindRecordComponent, node)
		for p.at(lexer.TokenAt) {
			if err := p.parseAnnotation(comp); err != nil {
				return 0, err
			}
		}
		if _, err := p.parseType(comp); err != nil {
			return 0, err
		}
		if p.at(lexer.TokenEllipsis) {
			if _, err := p.advance(); err != nil {
				return 0, err
			}
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return 0, err
		}
		p.finalize(comp, uint32(p.previousEnd()))
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
	if p.at(lexer.TokenImplements) {
		if err := p.parseSupertypeListClause(node, ast.KindImplementsClause); err != nil {
			return 0, err
		}
	}
	if err := p.parseClassBodyMembers(node); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseAnnotationDeclaration(parent, modNode int32) (int32, *errors.Error) {
	start := p.arena.Start(modNode)
	if _, err := p.advance(); err != nil { // '@'
		return 0, err
	}
	if _, err := p.advance(); err != nil { // 'interface'
		return 0, err
	}
	node := p.allocate(start, ast.KindAnnotationDeclaration, parent)
	p.arena.AdoptChild(node, modNode)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRBrace) && !p.atEOF() {
		if p.at(lexer.TokenClass) || p.at(lexer.TokenInterface) || p.at(lexer.TokenEnum) ||
			(p.at(lexer.TokenRecord) && isIdentifierLike(p.peekAt(1).Kind)) ||
			(p.at(lexer.TokenAt) && p.peekAt(1).Kind == lexer.TokenInterface) {
			if _, err := p.parseTypeDeclaration(node); err != nil {
				return 0, err
			}
			continue
		}
		if err := p.parseAnnotationElement(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseAnnotationElement parses one "Type name() [default value];" entry
// of an annotation type body.
func (p *Parser) parseAnnotationElement(parent int32) *errors.Error {
	start := uint32(p.current().StartOffset)
	typeNode, err := p.parseType(arena.NoParent)
	if err != nil {
		return err
	}
	node := p.allocate(start, ast.KindAnnotationElementDeclaration, parent)
	p.arena.AdoptChild(node, typeNode)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return err
	}
	if p.at(lexer.TokenDefault) {
		if _, err := p.advance(); err != nil {
			return err
		}
		switch {
		case p.at(lexer.TokenAt):
			if err := p.parseAnnotation(node); err != nil {
				return err
			}
		case p.at(lexer.TokenLBrace):
			if _, err := p.parseArrayInitializer(node); err != nil {
				return err
			}
		default:
			if _, err := p.parseExpression(node); err != nil {
				return err
			}
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

func (p *Parser) parseTypeParameterList(parent int32) *errors.Error {
	if _, err := p.advance(); err != nil { // '<'
		return err
	}
	for {
		tpStart := uint32(p.current().StartOffset)
		tp := p.allocate(tpStart, ast.KindTypeParameter, parent)
		for p.at(lexer.TokenAt) {
			if err := p.parseAnnotation(tp); err != nil {
				return err
			}
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return err
		}
		if p.at(lexer.TokenExtends) {
			if _, err := p.advance(); err != nil {
				return err
			}
			if _, err := p.parseType(tp); err != nil {
				return err
			}
			for p.at(lexer.TokenAmp) {
				if _, err := p.advance(); err != nil {
					return err
				}
				if _, err := p.parseType(tp); err != nil {
					return err
				}
			}
		}
		p.finalize(tp, uint32(p.previousEnd()))
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	if !p.expectGT() {
		return p.unexpected("'>'")
	}
	return nil
}

func (p *Parser) parseSingleSupertypeClause(parent int32, kind ast.NodeKind) *errors.Error {
	if _, err := p.advance(); err != nil { // 'extends'
		return err
	}
	node := p.allocate(uint32(p.previousEnd()), kind, parent)
	if _, err := p.parseType(node); err != nil {
		return err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

func (p *Parser) parseSupertypeListClause(parent int32, kind ast.NodeKind) *errors.Error {
	if _, err := p.advance(); err != nil { // 'extends'/'implements'/'permits'
		return err
	}
	node := p.allocate(uint32(p.previousEnd()), kind, parent)
	for {
		if _, err := p.parseType(node); err != nil {
			return err
		}
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

// parseClassBodyMembers parses "{" member* "}" attaching each member
// directly to parent — named type declarations have no separate "body"
// node, unlike anonymous class bodies.
func (p *Parser) parseClassBodyMembers(parent int32) *errors.Error {
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return err
	}
	for !p.at(lexer.TokenRBrace) && !p.atEOF() {
		if err := p.parseMember(parent); err != nil {
			return err
		}
	}
	_, err := p.expect(lexer.TokenRBrace)
	return err
}

// parseMember parses one class/interface/enum/record body member: a
// nested type declaration, an initializer block, or a field/method/
// constructor/compact-constructor declaration.
func (p *Parser) parseMember(parent int32) *errors.Error {
	if p.at(lexer.TokenSemicolon) {
		_, err := p.advance()
		return err
	}

	modNode, err := p.parseModifierList(arena.NoParent)
	if err != nil {
		return err
	}

	switch {
	case p.at(lexer.TokenClass), p.at(lexer.TokenInterface), p.at(lexer.TokenEnum):
		return p.parseNestedTypeAfterModifiers(parent, modNode)
	case p.at(lexer.TokenRecord) && isIdentifierLike(p.peekAt(1).Kind):
		return p.parseNestedTypeAfterModifiers(parent, modNode)
	case p.at(lexer.TokenAt) && p.peekAt(1).Kind == lexer.TokenInterface:
		return p.parseNestedTypeAfterModifiers(parent, modNode)
	case p.at(lexer.TokenLBrace):
		start := p.arena.Start(modNode)
		node := p.allocate(start, ast.KindInitializerBlock, parent)
		p.arena.AdoptChild(node, modNode)
		if _, err := p.advance(); err != nil { // '{'
			return err
		}
		for !p.at(lexer.TokenRBrace) && !p.atEOF() {
			if _, err := p.parseStatement(node); err != nil {
				return err
			}
		}
		if _, err := p.expect(lexer.TokenRBrace); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}

	return p.parseFieldOrMethodMember(parent, modNode)
}

func (p *Parser) parseNestedTypeAfterModifiers(parent, modNode int32) *errors.Error {
	var node int32
	var err *errors.Error
	switch {
	case p.at(lexer.TokenClass):
		node, err = p.parseClassDeclaration(parent, modNode)
	case p.at(lexer.TokenInterface):
		node, err = p.parseInterfaceDeclaration(parent, modNode)
	case p.at(lexer.TokenEnum):
		node, err = p.parseEnumDeclaration(parent, modNode)
	case p.at(lexer.TokenRecord):
		node, err = p.parseRecordDeclaration(parent, modNode)
	default:
		node, err = p.parseAnnotationDeclaration(parent, modNode)
	}
	_ = node
	return err
}

// parseFieldOrMethodMember parses whatever follows a member's modifiers
// once it is known not to be a nested type or initializer block: a
// constructor, compact constructor, method, or field declaration. The
// distinguishing lookahead happens before any node but the modifier list
// is allocated, since the final node's kind depends on what follows the
// optional generic-method type parameters and the type/name pair.
func (p *Parser) parseFieldOrMethodMember(parent, modNode int32) *errors.Error {
	start := p.arena.Start(modNode)

	var typeParams []int32
	if p.at(lexer.TokenLt) {
		if _, err := p.advance(); err != nil {
			return err
		}
		for {
			tpStart := uint32(p.current().StartOffset)
			tp := p.allocate(tpStart, ast.KindTypeParameter, arena.NoParent)
			for p.at(lexer.TokenAt) {
				if err := p.parseAnnotation(tp); err != nil {
					return err
				}
			}
			if _, err := p.expect(lexer.TokenIdentifier); err != nil {
				return err
			}
			if p.at(lexer.TokenExtends) {
				if _, err := p.advance(); err != nil {
					return err
				}
				if _, err := p.parseType(tp); err != nil {
					return err
				}
				for p.at(lexer.TokenAmp) {
					if _, err := p.advance(); err != nil {
						return err
					}
					if _, err := p.parseType(tp); err != nil {
						return err
					}
				}
			}
			p.finalize(tp, uint32(p.previousEnd()))
			typeParams = append(typeParams, tp)
			if p.at(lexer.TokenComma) {
				if _, err := p.advance(); err != nil {
					return err
				}
				continue
			}
			break
		}
		if !p.expectGT() {
			return p.unexpected("'>'")
		}
	}

	if isIdentifierLike(p.current().Kind) && p.peekAt(1).Kind == lexer.TokenLBrace {
		node := p.allocate(start, ast.KindCompactConstructorDeclaration, parent)
		p.arena.AdoptChild(node, modNode)
		for _, tp := range typeParams {
			p.arena.AdoptChild(node, tp)
		}
		if _, err := p.advance(); err != nil { // name
			return err
		}
		if _, err := p.parseBlockStatement(node); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}

	if isIdentifierLike(p.current().Kind) && p.peekAt(1).Kind == lexer.TokenLParen {
		node := p.allocate(start, ast.KindConstructorDeclaration, parent)
		p.arena.AdoptChild(node, modNode)
		for _, tp := range typeParams {
			p.arena.AdoptChild(node, tp)
		}
		if _, err := p.advance(); err != nil { // name
			return err
		}
		if err := p.parseParameterList(node); err != nil {
			return err
		}
		if p.at(lexer.TokenThrows) {
			if err := p.parseThrowsClause(node); err != nil {
				return err
			}
		}
		if _, err := p.parseBlockStatement(node); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}

	typeNode, perr := p.parseType(arena.NoParent)
	if perr != nil {
		return perr
	}
	if !isIdentifierLike(p.current().Kind) {
		return p.unexpected("a member name")
	}

	if p.peekAt(1).Kind == lexer.TokenLParen {
		node := p.allocate(start, ast.KindMethodDeclaration, parent)
		p.arena.AdoptChild(node, modNode)
		for _, tp := range typeParams {
			p.arena.AdoptChild(node, tp)
		}
		p.arena.AdoptChild(node, typeNode)
		if _, err := p.advance(); err != nil { // name
			return err
		}
		if err := p.parseParameterList(node); err != nil {
			return err
		}
		for p.at(lexer.TokenLBracket) && p.peekAt(1).Kind == lexer.TokenRBracket {
			if _, err := p.advance(); err != nil {
				return err
			}
			if _, err := p.advance(); err != nil {
				return err
			}
		}
		if p.at(lexer.TokenThrows) {
			if err := p.parseThrowsClause(node); err != nil {
				return err
			}
		}
		switch {
		case p.at(lexer.TokenLBrace):
			if _, err := p.parseBlockStatement(node); err != nil {
				return err
			}
		case p.at(lexer.TokenDefault):
			if _, err := p.advance(); err != nil {
				return err
			}
			if p.at(lexer.TokenAt) {
				if err := p.parseAnnotation(node); err != nil {
					return err
				}
			} else if _, err := p.parseExpression(node); err != nil {
				return err
			}
			if _, err := p.expect(lexer.TokenSemicolon); err != nil {
				return err
			}
		default:
			if _, err := p.expect(lexer.TokenSemicolon); err != nil {
				return err
			}
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}

	node := p.allocate(start, ast.KindFieldDeclaration, parent)
	p.arena.AdoptChild(node, modNode)
	p.arena.AdoptChild(node, typeNode)
	for {
		declStart := uint32(p.current().StartOffset)
		decl := p.allocate(declStart, ast.KindVariableDeclarator, node)
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return err
		}
		for p.at(lexer.TokenLBracket) && p.peekAt(1).Kind == lexer.TokenRBracket {
			if _, err := p.advance(); err != nil {
				return err
			}
			if _, err := p.advance(); err != nil {
				return err
			}
		}
		if p.at(lexer.TokenAssign) {
			if _, err := p.advance(); err != nil {
				return err
			}
			if p.at(lexer.TokenLBrace) {
				if _, err := p.parseArrayInitializer(decl); err != nil {
					return err
				}
			} else if _, err := p.parseExpression(decl); err != nil {
				return err
			}
		}
		p.finalize(decl, uint32(p.previousEnd()))
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

func (p *Parser) parseParameterList(parent int32) *errors.Error {
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return err
	}
	for !p.at(lexer.TokenRParen) {
		pStart := uint32(p.current().StartOffset)
		param := p.allocate(pStart, ast.KindParameter, parent)
		for p.at(lexer.TokenFinal) {
			if _, err := p.advance(); err != nil {
				return err
			}
		}
		for p.at(lexer.TokenAt) {
			if err := p.parseAnnotation(param); err != nil {
				return err
			}
		}
		if _, err := p.parseType(param); err != nil {
			return err
		}
		if p.at(lexer.TokenEllipsis) {
			if _, err := p.advance(); err != nil {
				return err
			}
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return err
		}
		for p.at(lexer.TokenLBracket) && p.peekAt(1).Kind == lexer.TokenRBracket {
			if _, err := p.advance(); err != nil {
				return err
			}
			if _, err := p.advance(); err != nil {
				return err
			}
		}
		p.finalize(param, uint32(p.previousEnd()))
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	_, err := p.expect(lexer.TokenRParen)
	return err
}

func (p *Parser) parseThrowsClause(parent int32) *errors.Error {
	if _, err := p.advance(); err != nil { // 'throws'
		return err
	}
	node := p.allocate(uint32(p.previousEnd()), ast.KindThrowsClause, parent)
	for {
		if _, err := p.parseType(node); err != nil {
			return err
		}
		if p.at(lexer.TokenComma) {
			if _, err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}
