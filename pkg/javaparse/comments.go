package javaparse

import (
	"github.com/javalang/javaparse/pkg/javaparse/arena"
	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/lexer"
)

// commentNodeKinds maps a comment token's lexer kind to the arena node
// kind it becomes. Comments are retained as nodes (every one of them),
// but carry no grammatical meaning, so they are allocated with no parent
// (arena.NoParent).
var commentNodeKinds = map[lexer.TokenKind]ast.NodeKind{
	lexer.TokenLineComment:        ast.KindLineComment,
	lexer.TokenMarkdownDocComment: ast.KindMarkdownDocComment,
	lexer.TokenBlockComment:       ast.KindBlockComment,
	lexer.TokenJavadocComment:     ast.KindJavadocComment,
}

// extractComments partitions tokens into the comment-free stream the
// grammar consumes and the comment tokens it never sees, allocating one
// arena node per comment along the way. This runs once per parse,
// before the token vector reaches parser.New, so the recursive-descent
// grammar — and its lookahead via peekAt — never has to know comments
// can appear between any two tokens.
func extractComments(tokens []lexer.Token, a *arena.Arena) []lexer.Token {
	grammar := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		kind, isComment := commentNodeKinds[tok.Kind]
		if !isComment {
			grammar = append(grammar, tok)
			continue
		}
		length := uint32(tok.EndOffset - tok.StartOffset)
		a.Allocate(uint32(tok.StartOffset), length, kind, arena.NoParent)
	}
	return grammar
}
