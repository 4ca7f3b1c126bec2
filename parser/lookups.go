package parser

import (
	"go.creack.net/tacfront/ast"
	"go.creack.net/tacfront/lexer"
)

type lookupTable[T any] map[lexer.TokenType]T

var declTypes = lookupTable[ast.Type]{
	lexer.TokInt:   ast.TypeInt,
	lexer.TokFloat: ast.TypeFloat,
}

// Additive operators, handled by the expression tail.
var additiveOps = lookupTable[ast.Op]{
	lexer.TokPlus: ast.OpAdd,
	lexer.TokDash: ast.OpSub,
}

// Multiplicative operators, handled by the term tail. They bind tighter.
var multiplicativeOps = lookupTable[ast.Op]{
	lexer.TokMultiply: ast.OpMul,
	lexer.TokSlash:    ast.OpDiv,
}
