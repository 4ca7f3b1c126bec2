package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/tacfront/ast"
	"go.creack.net/tacfront/lexer"
	"go.creack.net/tacfront/parser"
	"go.creack.net/tacfront/symtab"
)

// int a, b; a = 3 + 4 * (2 - 1);
const exampleListing = `
int
id a
,
id b
;
id a
=
num 3
+
num 4
*
(
num 2
-
num 1
)
;
$
`

func compileListing(t *testing.T, listing string) (*parser.Result, error) {
	t.Helper()
	tokens, err := lexer.ReadTokens(strings.NewReader(listing))
	require.NoError(t, err)
	return parser.Compile(tokens)
}

func code(res *parser.Result) []string {
	var out []string
	for _, in := range res.Code {
		out = append(out, in.String())
	}
	return out
}

func TestCompileExample(t *testing.T) {
	res, err := compileListing(t, exampleListing)
	require.NoError(t, err)

	assert.Equal(t, []string{"t1 = 1", "t2 = 4 * t1", "t3 = 3 + t2", "a = t3"}, code(res))

	entries := res.Symbols.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a | type=int | scope=global | offset=0", entries[0].String())
	assert.Equal(t, "b | type=int | scope=global | offset=1", entries[1].String())

	want := `Program
 Decls:
    Decl(type=int, ids=[a, b])
 Stmts:
    Assign(id=a)
      BinOp(op='+') [type=int const=none]
        Const(3) [type=int]
        BinOp(op='*') [type=int const=none]
          Const(4) [type=int]
          BinOp(op='-') [type=int const=1]
            Const(2) [type=int]
            Const(1) [type=int]
`
	assert.Equal(t, want, res.Program.Dump())
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code []string
	}{
		{name: "no statements", src: "int a ; $", code: nil},
		{name: "literal", src: "int a ; a = 5 ; $", code: []string{"t1 = 5", "a = t1"}},
		{name: "copy", src: "int a , b ; a = b ; $", code: []string{"a = b"}},
		{
			name: "float division",
			src:  "float x ; int n ; x = n / 4 + 1 / 4 ; $",
			code: []string{"t1 = n / 4", "t2 = 0.25", "t3 = t1 + t2", "x = t3"},
		},
		{
			name: "statement order",
			src:  "int a , b ; a = 1 + 2 ; b = a * ( a - 1 ) ; a = b ; $",
			code: []string{"t1 = 3", "a = t1", "t2 = a - 1", "t3 = a * t2", "b = t3", "a = b"},
		},
		{
			name: "left associative chain",
			src:  "int a , b , c ; a = a - b - c ; $",
			code: []string{"t1 = a - b", "t2 = t1 - c", "a = t2"},
		},
		{
			name: "float literals",
			src:  "float x ; x = 1.5 * 2 ; $",
			code: []string{"t1 = 3.0", "x = t1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Compile(lex(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.code, code(res))
		})
	}
}

func TestCompileFloatPropagation(t *testing.T) {
	res, err := parser.Compile(lex("int a ; float f ; a = ( a + 1 ) * ( a - ( 2 * f ) ) ; $"))
	require.NoError(t, err)

	root := res.Program.Stmts[0].Expr.(*ast.BinOp)
	assert.Equal(t, ast.TypeFloat, root.Type)
	assert.Equal(t, ast.TypeInt, root.Left.(*ast.BinOp).Type)
	assert.Equal(t, ast.TypeFloat, root.Right.(*ast.BinOp).Type)
}

func TestCompileErrors(t *testing.T) {
	t.Run("undeclared in expression", func(t *testing.T) {
		_, err := parser.Compile(lex("int a ; a = ghost + 1 ; $"))
		var undErr *symtab.UndeclaredIdentifierError
		require.ErrorAs(t, err, &undErr)
		assert.Equal(t, "ghost", undErr.Name)
		assert.True(t, strings.HasPrefix(err.Error(), "decorate: "), err.Error())
	})

	t.Run("undeclared target", func(t *testing.T) {
		_, err := parser.Compile(lex("int a ; b = 1 ; $"))
		var undErr *symtab.UndeclaredIdentifierError
		require.ErrorAs(t, err, &undErr)
		assert.Equal(t, "b", undErr.Name)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := parser.Compile(lex("int a ; float a ; $"))
		var dupErr *symtab.DuplicateDeclarationError
		require.ErrorAs(t, err, &dupErr)
		assert.True(t, strings.HasPrefix(err.Error(), "parse: "), err.Error())
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := parser.Compile(lex("int a ; a = ; $"))
		var synErr *parser.SyntaxError
		require.ErrorAs(t, err, &synErr)
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := parser.Compile(lex("float x ; x = 1 / 0 ; $"))
		require.ErrorIs(t, err, ast.ErrDivisionByZero)
	})
}

// lex mirrors the internal test helper: whitespace separated words.
func lex(src string) []lexer.Token {
	var tokens []lexer.Token
	for _, w := range strings.Fields(src) {
		switch tt, ok := lexer.LookupKind(w); {
		case ok && !tt.IsOneOf(lexer.TokIdentifier, lexer.TokNumber):
			tokens = append(tokens, lexer.NewToken(tt, w))
		case w[0] >= '0' && w[0] <= '9':
			tokens = append(tokens, lexer.NewToken(lexer.TokNumber, w))
		default:
			tokens = append(tokens, lexer.NewToken(lexer.TokIdentifier, w))
		}
	}
	return tokens
}
