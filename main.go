package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"

	"go.creack.net/tacfront/lexer"
	"go.creack.net/tacfront/parser"
)

// Sample program: int a, b; a = 3 + 4 * (2 - 1);
var sampleTokens = []lexer.Token{
	lexer.NewToken(lexer.TokInt, "int"),
	lexer.NewToken(lexer.TokIdentifier, "a"),
	lexer.NewToken(lexer.TokComma, ","),
	lexer.NewToken(lexer.TokIdentifier, "b"),
	lexer.NewToken(lexer.TokSemicolon, ";"),
	lexer.NewToken(lexer.TokIdentifier, "a"),
	lexer.NewToken(lexer.TokEquals, "="),
	lexer.NewToken(lexer.TokNumber, "3"),
	lexer.NewToken(lexer.TokPlus, "+"),
	lexer.NewToken(lexer.TokNumber, "4"),
	lexer.NewToken(lexer.TokMultiply, "*"),
	lexer.NewToken(lexer.TokParenLeft, "("),
	lexer.NewToken(lexer.TokNumber, "2"),
	lexer.NewToken(lexer.TokDash, "-"),
	lexer.NewToken(lexer.TokNumber, "1"),
	lexer.NewToken(lexer.TokParenRight, ")"),
	lexer.NewToken(lexer.TokSemicolon, ";"),
	lexer.NewToken(lexer.TokEOF, "$"),
}

func loadTokens(path string) ([]lexer.Token, error) {
	if path == "" {
		return sampleTokens, nil
	}
	if path == "-" {
		return lexer.ReadTokens(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }() // Best effort.

	tokens, err := lexer.ReadTokens(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

func report(w io.Writer, res *parser.Result, debug bool) {
	fmt.Fprintln(w, "=== Decorated AST ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Program.Dump())
	if debug {
		_, _ = pretty.Fprintf(w, "%# v\n\n", res.Program)
	}

	fmt.Fprintln(w, "=== Symbol table ===")
	fmt.Fprintln(w)
	for _, e := range res.Symbols.Entries() {
		fmt.Fprintln(w, e)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Three-address code ===")
	fmt.Fprintln(w)
	for _, in := range res.Code {
		fmt.Fprintln(w, in)
	}
}

func main() {
	tokensPath := flag.String("tokens", "", "token listing to compile, one \"kind [lexeme]\" per line (\"-\" for stdin, default: built-in sample)")
	debug := flag.Bool("debug", false, "also dump the raw decorated tree")
	flag.Parse()

	tokens, err := loadTokens(*tokensPath)
	if err != nil {
		log.Fatalf("Load tokens: %s.", err)
	}

	res, err := parser.Compile(tokens)
	if err != nil {
		log.Fatalf("Compile: %s.", err)
	}

	report(os.Stdout, res, *debug)
}
