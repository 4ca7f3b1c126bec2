// Package parser implements the predictive recursive-descent parser and the
// compile pipeline built on top of it.
package parser

import (
	"fmt"

	"go.creack.net/tacfront/ast"
	"go.creack.net/tacfront/lexer"
	"go.creack.net/tacfront/symtab"
)

type parser struct {
	tokens []lexer.Token

	pos      int // Index of curToken in tokens.
	curToken lexer.Token

	symtab *symtab.Table
}

// bailout carries a parse error up the recursion to Parse.
type bailout struct {
	err error
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens: tokens,
		symtab: symtab.New(),
	}
	p.curToken = p.tokenAt(0)
	return p
}

// Parse builds the program tree for the given token sequence and the symbol
// table of its declarations. The sequence must end with exactly one '$' token.
func Parse(tokens []lexer.Token) (prog *ast.Program, table *symtab.Table, err error) {
	p := newParser(tokens)

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, table, err = nil, nil, b.err
		}
	}()

	prog = parseProgram(p)
	return prog, p.symtab, nil
}

func (p *parser) fail(err error) {
	panic(bailout{err: err})
}

// tokenAt returns the token at index i. Reading past the end yields an error
// token so a missing '$' surfaces as a syntax error.
func (p *parser) tokenAt(i int) lexer.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return lexer.Token{Type: lexer.TokError}
}

func (p *parser) nextToken() lexer.Token {
	p.pos++
	p.curToken = p.tokenAt(p.pos)
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	p.fail(&SyntaxError{Expected: kind, Got: p.curToken, Pos: p.pos})
	return lexer.Token{}
}

// consume expects one of the given types and advances past it.
func (p *parser) consume(kind ...lexer.TokenType) lexer.Token {
	tok := p.expect(kind...)
	p.nextToken()
	return tok
}

func (p *parser) declare(ids []string, typ ast.Type, pos int) {
	for _, id := range ids {
		if _, err := p.symtab.Insert(id, typ); err != nil {
			p.fail(fmt.Errorf("declaration at position %d: %w", pos, err))
		}
	}
}
