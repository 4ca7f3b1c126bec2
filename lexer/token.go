package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF             // '$'.

	// Keywords.
	TokInt
	TokFloat

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Operators.
	TokEquals
	TokPlus
	TokDash
	TokMultiply
	TokSlash

	// Delimiters.
	TokComma
	TokSemicolon
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the kind spelling of the token type, as used in token listings.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their kind spelling.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "$",

	TokInt:   "int",
	TokFloat: "float",

	TokIdentifier: "id",
	TokNumber:     "num",

	TokEquals:   "=",
	TokPlus:     "+",
	TokDash:     "-",
	TokMultiply: "*",
	TokSlash:    "/",

	TokComma:      ",",
	TokSemicolon:  ";",
	TokParenLeft:  "(",
	TokParenRight: ")",
}

var kindLookup = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenTypeStrings))
	for tt, s := range tokenTypeStrings {
		if tt == TokError {
			continue
		}
		m[s] = tt
	}
	return m
}()

// LookupKind resolves a kind spelling ("int", "id", "+", "$", ...) to its token type.
func LookupKind(kind string) (TokenType, bool) {
	tt, ok := kindLookup[kind]
	return tt, ok
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token: a (kind, lexeme) pair.
type Token struct {
	Type  TokenType
	Value string

	line int
	pos  int
}

// NewToken creates a token without source location.
func NewToken(tt TokenType, value string) Token {
	return Token{Type: tt, Value: value}
}

// Line returns the 1-based line the token was read from, 0 if unknown.
func (t Token) Line() int { return t.line }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError && t.Value == "":
		return "ERROR"
	case t.line == 0:
		return fmt.Sprintf("%s: %q", t.Type, t.Value)
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.line, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.line, t.pos, t.Value)
}
