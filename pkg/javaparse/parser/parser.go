// Package parser implements the recursive-descent, arena-backed core
// parser: declarations, statements, expressions, types and module
// directives. The grammar is split across cooperating
// files — declarations.go, statements.go, expressions.go, types.go,
// modules.go — that all operate on the single *Parser state defined
// here.
package parser

import (
	"fmt"

	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
	"github.com/javalang/javaparse/pkg/javaparse/security"
)

// Parser holds all state for one parse: the token vector, the current
// read position, the output arena, the security guard, and the
// pending-greater-than counter used to resplit composite '>' tokens in
// generic context.
type Parser struct {
	tokens []lexer.Token
	pos int
	arena *arena.Arena
	guard *security.Guard
	pending int // pending-'>' counter
	depth int
}

// New builds a parser over an already-lexed token vector. The caller
// retains ownership of neither tokens nor a — both are adopted.
func New(tokens []lexer.Token, a *arena.Arena, guard *security.Guard) *Parser {
	return &Parser{tokens: tokens, arena: a, guard: guard}
}

// Arena exposes the node store the parser allocated into, for callers
// that want it after a successful Parse.
func (p *Parser) Arena() *arena.Arena { return p.arena }

// Parse dispatches on the three mutually exclusive top-level forms:
// module compilation unit, implicit class (JEP 512), or ordinary
// compilation unit.
func (p *Parser) Parse() (int32, *errors.Error) {
	if p.looksLikeModuleDeclaration() {
		return p.parseModuleCompilationUnit()
	}
	return p.parseOrdinaryOrImplicitCompilationUnit()
}

// --- token stream primitives -----------------------------------------

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) at(kind lexer.TokenKind) bool {
	return p.current().Kind == kind
}

func (p *Parser) atEOF() bool {
	return p.at(lexer.TokenEOF)
}

// advance consumes and returns the current token, counting it against
// the security guard's periodic deadline check.
func (p *Parser) advance() (lexer.Token, *errors.Error) {
	tok := p.current()
	if !tok.IsEOF() {
		p.pos++
	}
	if p.guard != nil {
		if err := p.guard.CheckConsume(); err != nil {
			return tok, err
		}
	}
	return tok, nil
}

// expect consumes the current token if it matches kind, else reports a
// parser error naming what was expected.
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, *errors.Error) {
	if !p.at(kind) {
		return lexer.Token{}, p.unexpected(kind.String())
	}
	return p.advance()
}

func (p *Parser) unexpected(expected string) *errors.Error {
	tok := p.current()
	msg := fmt.Sprintf("expected %s", expected)
	if tok.IsEOF() {
		msg = fmt.Sprintf("expected %s, found end of file", expected)
	} else {
		msg = fmt.Sprintf("expected %s, found %q", expected, tok.RawText)
	}
	return &errors.Error{
		Type: errors.ErrorTypeParser,
		Message: msg,
		Location: ast.Location{Offset: tok.StartOffset},
	}
}

// mark/reset implement the O(1) checkpoint/restore needed for
// cast/lambda/enhanced-for/variable-declaration trial parses.
type checkpoint struct {
	pos int
	pending int
	arena arena.Checkpoint
}

func (p *Parser) mark() checkpoint {
	return checkpoint{pos: p.pos, pending: p.pending, arena: p.arena.Mark()}
}

// reset rewinds the token cursor and discards any nodes allocated since
// the checkpoint, so a failed trial parse leaves no trace.
func (p *Parser) reset(c checkpoint) {
	p.pos = c.pos
	p.pending = c.pending
	p.arena.Truncate(c.arena)
}

// --- depth/arena helpers ----------------------------------------------

func (p *Parser) enterDepth() *errors.Error {
	if p.guard != nil {
		return p.guard.EnterDepth()
	}
	return nil
}

func (p *Parser) exitDepth() {
	if p.guard != nil {
		p.guard.ExitDepth()
	}
}

// allocate appends a placeholder node (length 0) and returns its index;
// callers update the length once the node's extent is known, following
// the push-parent/allocate-children/finalize-parent pattern.
func (p *Parser) allocate(start uint32, kind ast.NodeKind, parent int32) int32 {
	return p.arena.Allocate(start, 0, kind, parent)
}

func (p *Parser) finalize(node int32, endOffset uint32) {
	start := p.arena.Start(node)
	length := uint32(0)
	if endOffset > start {
		length = endOffset - start
	}
	// UpdateLength reports an error only for an index outside the arena,
	// and node was returned by allocate, so the error is ignored here.
	_ = p.arena.UpdateLength(node, length)
}

func (p *Parser) offsetAt(tok lexer.Token) uint32 { return uint32(tok.StartOffset) }
