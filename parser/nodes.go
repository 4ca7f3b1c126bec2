package parser

import (
	"strconv"
	"strings"

	"go.creack.net/tacfront/ast"
	"go.creack.net/tacfront/lexer"
)

// Program : decl_list stmt_list '$'.
func parseProgram(p *parser) *ast.Program {
	prog := &ast.Program{
		Decls: parseDeclList(p),
		Stmts: parseStmtList(p),
	}

	p.consume(lexer.TokEOF)
	if p.pos < len(p.tokens) {
		p.fail(&SyntaxError{Got: p.curToken, Pos: p.pos})
	}
	return prog
}

// DeclList : decl ';' decl_list | ε.
func parseDeclList(p *parser) []*ast.Decl {
	var decls []*ast.Decl
	for p.curToken.Type.IsOneOf(lexer.TokInt, lexer.TokFloat) {
		decls = append(decls, parseDecl(p))
		p.consume(lexer.TokSemicolon)
	}
	return decls
}

// Decl : ('int' | 'float') id id_list_tail.
// All the ids are declared once the list is complete.
func parseDecl(p *parser) *ast.Decl {
	pos := p.pos
	typ := declTypes[p.consume(lexer.TokInt, lexer.TokFloat).Type]

	first := p.consume(lexer.TokIdentifier).Value
	ids := append([]string{first}, parseIDListTail(p)...)

	p.declare(ids, typ, pos)
	return &ast.Decl{Type: typ, IDs: ids}
}

// IDListTail : ',' id id_list_tail | ε.
func parseIDListTail(p *parser) []string {
	if p.curToken.Type != lexer.TokComma {
		return nil
	}
	p.nextToken()
	id := p.consume(lexer.TokIdentifier).Value
	return append([]string{id}, parseIDListTail(p)...)
}

// StmtList : stmt ';' stmt_list | ε.
func parseStmtList(p *parser) []*ast.Assign {
	var stmts []*ast.Assign
	for p.curToken.Type == lexer.TokIdentifier {
		stmts = append(stmts, parseStmt(p))
		p.consume(lexer.TokSemicolon)
	}
	return stmts
}

// Stmt : id '=' expr.
func parseStmt(p *parser) *ast.Assign {
	id := p.consume(lexer.TokIdentifier).Value
	p.consume(lexer.TokEquals)
	return &ast.Assign{ID: id, Expr: parseExpr(p)}
}

// Expr : term expr_tail.
func parseExpr(p *parser) ast.Expr {
	return parseExprTail(p, parseTerm(p))
}

// ExprTail : ('+' | '-') term expr_tail | ε.
// left is the tree built so far, which keeps the chain left-associative.
func parseExprTail(p *parser, left ast.Expr) ast.Expr {
	op, ok := additiveOps[p.curToken.Type]
	if !ok {
		return left
	}
	p.nextToken()
	right := parseTerm(p)
	return parseExprTail(p, &ast.BinOp{Op: op, Left: left, Right: right})
}

// Term : factor term_tail.
func parseTerm(p *parser) ast.Expr {
	return parseTermTail(p, parseFactor(p))
}

// TermTail : ('*' | '/') factor term_tail | ε.
func parseTermTail(p *parser, left ast.Expr) ast.Expr {
	op, ok := multiplicativeOps[p.curToken.Type]
	if !ok {
		return left
	}
	p.nextToken()
	right := parseFactor(p)
	return parseTermTail(p, &ast.BinOp{Op: op, Left: left, Right: right})
}

// Factor : '(' expr ')' | id | num.
func parseFactor(p *parser) ast.Expr {
	switch p.curToken.Type {
	case lexer.TokParenLeft:
		p.nextToken()
		e := parseExpr(p)
		p.consume(lexer.TokParenRight)
		return e

	case lexer.TokIdentifier:
		name := p.curToken.Value
		p.nextToken()
		// Undeclared names keep an unknown type, the decorator reports them.
		id := &ast.ID{Name: name}
		if entry, err := p.symtab.Lookup(name); err == nil {
			id.Type = entry.Type
		}
		return id

	case lexer.TokNumber:
		c := parseNumber(p, p.curToken.Value)
		p.nextToken()
		return c

	default:
		p.expect(lexer.TokParenLeft, lexer.TokIdentifier, lexer.TokNumber)
		return nil
	}
}

// parseNumber types a literal after its lexeme: a decimal point makes it a float.
func parseNumber(p *parser, lexeme string) *ast.Const {
	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			p.fail(&LiteralError{Lexeme: lexeme, Pos: p.pos, Err: err})
		}
		return ast.NewConst(ast.FloatValue(f))
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		p.fail(&LiteralError{Lexeme: lexeme, Pos: p.pos, Err: err})
	}
	return ast.NewConst(ast.IntValue(i))
}
