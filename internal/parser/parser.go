// Package parser implements the recursive-descent parser that turns a
// token sequence into a tree of executable values: atoms, arrays, and
// procedure bodies.
package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-pslang/internal/lexer"
	"github.com/cwbudde/go-pslang/internal/values"
)

// noEnd is used as the "end delimiter" for the top-level parse, where
// there is no closing token to look for — parsing simply runs to the
// end of the token sequence.
const noEnd lexer.TokenType = -1

// Parser holds a single position cursor over a token sequence.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over the given token sequence.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the entire token sequence and returns the resulting
// code list. Parsing never fails: unterminated procedures/arrays and
// stray closing delimiters are tolerated silently, per this language's
// parser contract.
func (p *Parser) Parse() []values.Value {
	return p.parseUntil(noEnd)
}

// parseUntil consumes tokens until it sees `end` or runs out of input,
// returning the values collected along the way. `{` and `[` recurse
// into nested parseUntil calls for RBRACE/RBRACKET respectively.
func (p *Parser) parseUntil(end lexer.TokenType) []values.Value {
	var out []values.Value

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.Type == end {
			p.pos++
			return out
		}

		switch tok.Type {
		case lexer.LBRACE:
			p.pos++
			body := p.parseUntil(lexer.RBRACE)
			out = append(out, &values.ProcedureValue{Code: body})
		case lexer.LBRACKET:
			p.pos++
			elements := p.parseUntil(lexer.RBRACKET)
			out = append(out, &values.ArrayValue{Elements: elements})
		case lexer.RBRACE, lexer.RBRACKET:
			// A stray closing delimiter with nothing open at this level.
			// Mismatched `]`/`}` are never diagnosed; skip it and move on.
			p.pos++
		case lexer.STRING:
			out = append(out, &values.StringValue{Value: stringPayload(tok.Literal)})
			p.pos++
		case lexer.WORD:
			out = append(out, classifyWord(tok))
			p.pos++
		default:
			p.pos++
		}
	}

	return out
}

// stringPayload strips the outer parentheses a STRING token carries.
// An unterminated string (end-of-input reached before a closing paren)
// has no closing ')' to strip; the same depth and escape scan the lexer
// uses tells the two cases apart.
func stringPayload(literal string) string {
	if len(literal) == 0 {
		return literal
	}
	depth := 0
	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return literal[1:i]
			}
		}
	}
	return literal[1:]
}

// classifyWord decides what a bare WORD token means: a literal name
// (leading '/'), a boolean, an integer, a real, or — failing all of the
// above — an executable name.
func classifyWord(tok lexer.Token) values.Value {
	text := tok.Literal

	if strings.HasPrefix(text, "/") {
		return &values.LiteralNameValue{Text: text[1:]}
	}

	switch text {
	case "true":
		return &values.BooleanValue{Value: true}
	case "false":
		return &values.BooleanValue{Value: false}
	}

	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return &values.IntegerValue{Value: int32(n)}
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return &values.RealValue{Value: f}
	}

	return &values.NameValue{Text: text, Pos: tok.Pos}
}
