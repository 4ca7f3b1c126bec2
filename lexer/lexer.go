// Package lexer defines the token kinds of the expression language and reads
// pre-tokenized listings.
//
// The front-end never scans raw program text. Tokens come either from the caller
// directly or from a listing with one "kind [lexeme]" pair per line:
//
//	int
//	id a
//	, ,
//	num 3.5
//	$
//
// Blank lines and lines starting with '#' are ignored. The lexeme defaults to the
// kind spelling, except for "id" and "num" which require one.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ReadTokens decodes a token listing.
func ReadTokens(r io.Reader) ([]Token, error) {
	var tokens []Token

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		tok, ok, err := decodeLine(sc.Text(), line)
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read token listing: %w", err)
	}
	return tokens, nil
}

func decodeLine(text string, line int) (Token, bool, error) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Token{}, false, nil
	}
	pos := len(text) - len(trimmed) + 1

	fields := strings.Fields(trimmed)
	if len(fields) > 2 {
		return Token{}, false, fmt.Errorf("line %d: expected \"kind [lexeme]\", got %q", line, text)
	}
	tt, ok := LookupKind(fields[0])
	if !ok {
		return Token{}, false, fmt.Errorf("line %d: unknown token kind %q", line, fields[0])
	}

	value := tt.String()
	if len(fields) == 2 {
		value = fields[1]
	} else if tt.IsOneOf(TokIdentifier, TokNumber) {
		return Token{}, false, fmt.Errorf("line %d: missing lexeme for %q", line, fields[0])
	}

	return Token{Type: tt, Value: value, line: line, pos: pos}, true, nil
}
