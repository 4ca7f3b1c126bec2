package parser

import (
	"fmt"
	"strings"

	"go.creack.net/tacfront/lexer"
)

// SyntaxError reports an unexpected or missing token.
//
// Expected is empty when the input should already have ended, that is when a
// token follows the closing '$'. Nothing can be accepted there, so the error
// only names the extra token.
type SyntaxError struct {
	Expected []lexer.TokenType
	Got      lexer.Token
	Pos      int // Index of Got in the token sequence.
}

func (e *SyntaxError) Error() string {
	got := e.Got.String()
	if e.Got.Type == lexer.TokError {
		got = "end of tokens"
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected %s after end of input at position %d", got, e.Pos)
	}
	kinds := make([]string, 0, len(e.Expected))
	for _, k := range e.Expected {
		kinds = append(kinds, fmt.Sprintf("%q", k.String()))
	}
	return fmt.Sprintf("expected %s but got %s at position %d", strings.Join(kinds, " or "), got, e.Pos)
}

// LiteralError reports a numeric lexeme that is not a valid number.
type LiteralError struct {
	Lexeme string
	Pos    int
	Err    error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("invalid numeric literal %q at position %d: %s", e.Lexeme, e.Pos, e.Err)
}

func (e *LiteralError) Unwrap() error { return e.Err }
