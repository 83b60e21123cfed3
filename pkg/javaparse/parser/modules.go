package parser

import (
	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

// looksLikeModuleDeclaration scans past any leading annotations to
// decide whether this compilation unit is a module descriptor
// ("[open] module name {... }") rather than an ordinary or implicit
// class file. The walk has no step limit: it stops at the first token
// after the annotations, or at end of input inside an unbalanced
// annotation argument list.
func (p *Parser) looksLikeModuleDeclaration() bool {
	i := 0
	for p.peekAt(i).Kind == lexer.TokenAt {
		i++
		for p.peekAt(i).Kind == lexer.TokenIdentifier || p.peekAt(i).Kind == lexer.TokenDot {
			i++
		}
		if p.peekAt(i).Kind != lexer.TokenLParen {
			continue
		}
		depth := 0
		for {
			tok := p.peekAt(i)
			if tok.IsEOF() {
				return false
			}
			if tok.Kind == lexer.TokenLParen {
				depth++
			}
			if tok.Kind == lexer.TokenRParen {
				depth--
				i++
				if depth == 0 {
					break
				}
				continue
			}
			i++
		}
	}
	if p.peekAt(i).Kind == lexer.TokenOpen {
		i++
	}
	return p.peekAt(i).Kind == lexer.TokenModule
}

// parseModuleCompilationUnit parses a whole module-info.java file:
// optional annotations, an optional "open" modifier, "module"
// qualified-name, and the brace-delimited directive list.
func (p *Parser) parseModuleCompilationUnit() (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindModuleDeclaration, arena.NoParent)
	for p.at(lexer.TokenAt) {
		if err := p.parseAnnotation(node); err != nil {
			return 0, err
		}
	}
	if p.at(lexer.TokenOpen) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenModule); err != nil {
		return 0, err
	}
	if _, err := p.parseQualifiedName(node); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return 0, err
	}
	for !p.at(lexer.TokenRBrace) && !p.atEOF() {
		if err := p.parseModuleDirective(node); err != nil {
			return 0, err
		}
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return 0, err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

// parseQualifiedName parses Identifier ('.' Identifier)* as a single
// KindQualifiedName node spanning the whole dotted name.
func (p *Parser) parseQualifiedName(parent int32) (int32, *errors.Error) {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindQualifiedName, parent)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return 0, err
	}
	for p.at(lexer.TokenDot) {
		if _, err := p.advance(); err != nil {
			return 0, err
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return 0, err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}

func (p *Parser) parseModuleDirective(parent int32) *errors.Error {
	start := uint32(p.current().StartOffset)
	switch p.current().Kind {
	case lexer.TokenRequires:
		if _, err := p.advance(); err != nil {
			return err
		}
		node := p.allocate(start, ast.KindRequiresDirective, parent)
		for p.at(lexer.TokenStatic) || p.at(lexer.TokenTransitive) {
			if _, err := p.advance(); err != nil {
				return err
			}
		}
		if _, err := p.parseQualifiedName(node); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	case lexer.TokenExports:
		if _, err := p.advance(); err != nil {
			return err
		}
		node := p.allocate(start, ast.KindExportsDirective, parent)
		if _, err := p.parseQualifiedName(node); err != nil {
			return err
		}
		if p.at(lexer.TokenTo) {
			if _, err := p.advance(); err != nil {
				return err
			}
			for {
				if _, err := p.parseQualifiedName(node); err != nil {
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
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	case lexer.TokenOpens:
		if _, err := p.advance(); err != nil {
			return err
		}
		node := p.allocate(start, ast.KindOpensDirective, parent)
		if _, err := p.parseQualifiedName(node); err != nil {
			return err
		}
		if p.at(lexer.TokenTo) {
			if _, err := p.advance(); err != nil {
				return err
			}
			for {
				if _, err := p.parseQualifiedName(node); err != nil {
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
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	case lexer.TokenUses:
		if _, err := p.advance(); err != nil {
			return err
		}
		node := p.allocate(start, ast.KindUsesDirective, parent)
		if _, err := p.parseQualifiedName(node); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	case lexer.TokenProvides:
		if _, err := p.advance(); err != nil {
			return err
		}
		node := p.allocate(start, ast.KindProvidesDirective, parent)
		if _, err := p.parseQualifiedName(node); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenWith); err != nil {
			return err
		}
		for {
			if _, err := p.parseQualifiedName(node); err != nil {
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
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}
	return p.unexpected("a module directive")
}

// looksLikePackageDeclaration scans past leading annotations (package
// annotations precede "package" in source) for the "package" keyword.
func (p *Parser) looksLikePackageDeclaration() bool {
	i := 0
	for p.peekAt(i).Kind == lexer.TokenAt {
		i++
		for p.peekAt(i).Kind == lexer.TokenIdentifier || p.peekAt(i).Kind == lexer.TokenDot {
			i++
		}
		if p.peekAt(i).Kind != lexer.TokenLParen {
			continue
		}
		depth := 0
		for {
			tok := p.peekAt(i)
			if tok.IsEOF() {
				return false
			}
			if tok.Kind == lexer.TokenLParen {
				depth++
			}
			if tok.Kind == lexer.TokenRParen {
				depth--
				i++
				if depth == 0 {
					break
				}
				continue
			}
			i++
		}
	}
	return p.peekAt(i).Kind == lexer.TokenPackage
}

func (p *Parser) parsePackageDeclaration(parent int32) *errors.Error {
	start := uint32(p.current().StartOffset)
	node := p.allocate(start, ast.KindPackageDeclaration, parent)
	for p.at(lexer.TokenAt) {
		if err := p.parseAnnotation(node); err != nil {
			return err
		}
	}
	if _, err := p.expect(lexer.TokenPackage); err != nil {
		return err
	}
	if _, err := p.parseQualifiedName(node); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

// parseImportDeclaration parses an ordinary, static, on-demand ("*"), or
// module (JEP 511 "import module") import.
func (p *Parser) parseImportDeclaration(parent int32) *errors.Error {
	start := uint32(p.current().StartOffset)
	if _, err := p.advance(); err != nil { // 'import'
		return err
	}
	if p.at(lexer.TokenModule) {
		if _, err := p.advance(); err != nil {
			return err
		}
		node := p.allocate(start, ast.KindModuleImportDeclaration, parent)
		if _, err := p.parseQualifiedName(node); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return err
		}
		p.finalize(node, uint32(p.previousEnd()))
		return nil
	}

	kind := ast.KindImportDeclaration
	if p.at(lexer.TokenStatic) {
		if _, err := p.advance(); err != nil {
			return err
		}
		kind = ast.KindStaticImportDeclaration
	}
	node := p.allocate(start, kind, parent)
	if _, err := p.expect(lexer.TokenIdentifier); err != nil {
		return err
	}
	for p.at(lexer.TokenDot) {
		if _, err := p.advance(); err != nil {
			return err
		}
		if p.at(lexer.TokenStar) {
			if _, err := p.advance(); err != nil {
				return err
			}
			break
		}
		if _, err := p.expect(lexer.TokenIdentifier); err != nil {
			return err
		}
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return err
	}
	p.finalize(node, uint32(p.previousEnd()))
	return nil
}

// parseOrdinaryOrImplicitCompilationUnit parses a package declaration,
// imports, and then either ordinary top-level type declarations or, when
// none precede end of file, an implicit class's member list (JEP 512) —
// both are just a sequence of parseMember calls against the same
// CompilationUnit root, since member syntax doesn't differ between the
// two forms.
func (p *Parser) parseOrdinaryOrImplicitCompilationUnit() (int32, *errors.Error) {
	node := p.allocate(0, ast.KindCompilationUnit, arena.NoParent)
	if p.looksLikePackageDeclaration() {
		if err := p.parsePackageDeclaration(node); err != nil {
			return 0, err
		}
	}
	for p.at(lexer.TokenImport) {
		if err := p.parseImportDeclaration(node); err != nil {
			return 0, err
		}
	}
	for !p.atEOF() {
		if err := p.parseMember(node); err != nil {
			return 0, err
		}
	}
	p.finalize(node, uint32(p.previousEnd()))
	return node, nil
}
