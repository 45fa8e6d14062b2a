package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bawdo/between/nodes"
)

// tokenize splits input on whitespace, keeping single-quoted strings
// (a doubled quote escapes one) together as one token.
func tokenize(input string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if inQuote {
			cur.WriteByte(ch)
			if ch == '\'' {
				if i+1 < len(input) && input[i+1] == '\'' {
					cur.WriteByte('\'')
					i++
				} else {
					inQuote = false
				}
			}
			continue
		}

		switch ch {
		case '\'':
			cur.WriteByte(ch)
			inQuote = true
		case ' ', '\t':
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// parseOperand converts a token into an expression node:
//
//	'text'      string literal
//	42, 1.5     numeric literal
//	true/false  boolean literal
//	null        NULL
//	raw:SQL     raw SQL fragment
//	t.col       column of table t
//	col         bare identifier
func parseOperand(token string) (nodes.Node, error) {
	lower := strings.ToLower(token)
	switch {
	case token == "":
		return nil, errors.New("empty operand")
	case lower == "true":
		return nodes.Literal(true), nil
	case lower == "false":
		return nodes.Literal(false), nil
	case lower == "null":
		return nodes.Null(), nil
	case strings.HasPrefix(lower, "raw:"):
		raw := token[len("raw:"):]
		if raw == "" {
			return nil, errors.New("raw: needs a SQL fragment")
		}
		return nodes.Lit(raw), nil
	case strings.HasPrefix(token, "'"):
		if len(token) < 2 || !strings.HasSuffix(token, "'") {
			return nil, fmt.Errorf("unterminated string: %s", token)
		}
		inner := token[1 : len(token)-1]
		return nodes.Literal(strings.ReplaceAll(inner, "''", "'")), nil
	}

	// ParseFloat also reads inf and nan, which are valid column names.
	if looksNumeric(token) {
		if i, err := strconv.Atoi(token); err == nil {
			return nodes.Literal(i), nil
		}
		if f, err := strconv.ParseFloat(token, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return nodes.Literal(f), nil
		}
	}

	if table, col, ok := strings.Cut(token, "."); ok {
		if !isIdentifier(table) || !isIdentifier(col) {
			return nil, fmt.Errorf("invalid column reference: %s", token)
		}
		return nodes.NewTable(table).Col(col), nil
	}
	if !isIdentifier(token) {
		return nil, fmt.Errorf("cannot parse operand: %s", token)
	}
	return nodes.Ident(token), nil
}

func looksNumeric(s string) bool {
	c := s[0]
	if (c == '-' || c == '+') && len(s) > 1 {
		c = s[1]
	}
	return c == '.' || (c >= '0' && c <= '9')
}

// isIdentifier reports whether s is a plain SQL identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// parseBetweenArgs parses "<expr> [<lower> [and] <upper>]" into operands.
// Missing bounds are simply not returned so the caller can stage them later.
func parseBetweenArgs(input string) (expr nodes.Node, bounds []any, err error) {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return nil, nil, errors.New("usage: between <expr> [<lower> [and] <upper>]")
	}
	expr, err = parseOperand(tokens[0])
	if err != nil {
		return nil, nil, err
	}
	bounds, err = boundsFromTokens(tokens[1:])
	if err != nil {
		return nil, nil, err
	}
	return expr, bounds, nil
}

// boundsFromTokens parses "[<lower> [and] <upper>]".
func boundsFromTokens(tokens []string) ([]any, error) {
	var operands []string
	for i, tok := range tokens {
		if i == 1 && strings.EqualFold(tok, "and") {
			continue
		}
		operands = append(operands, tok)
	}
	if len(operands) > 2 {
		return nil, fmt.Errorf("too many operands: %s", strings.Join(operands[2:], " "))
	}

	var bounds []any
	for _, tok := range operands {
		n, err := parseOperand(tok)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, n)
	}
	return bounds, nil
}
