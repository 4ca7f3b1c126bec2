package parser

import (
	"fmt"

	"go.creack.net/tacfront/ast"
	"go.creack.net/tacfront/decorator"
	"go.creack.net/tacfront/lexer"
	"go.creack.net/tacfront/symtab"
	"go.creack.net/tacfront/tac"
)

// Result holds everything a compilation produces.
type Result struct {
	Program *ast.Program // Decorated.
	Symbols *symtab.Table
	Code    []tac.Instr
}

// Compile runs the whole pipeline: parse, decorate, then lower every statement.
// Any failure aborts the run.
func Compile(tokens []lexer.Token) (*Result, error) {
	prog, table, err := Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := decorator.Program(prog, table); err != nil {
		return nil, fmt.Errorf("decorate: %w", err)
	}

	gen := tac.New()
	if err := gen.Program(prog); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return &Result{
		Program: prog,
		Symbols: table,
		Code:    gen.Code(),
	}, nil
}
