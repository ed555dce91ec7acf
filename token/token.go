// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

type Kind int

const (
	KEYWORD Kind = iota
	DELIMITER
	IDENTIFIER
	COMPARISON
	ASSIGN
	CONSTANT
)

var kindNames = [...]string{
	KEYWORD:    "keyword",
	DELIMITER:  "delimiter",
	IDENTIFIER: "identifier",
	COMPARISON: "comparison operator",
	ASSIGN:     "assignment operator",
	CONSTANT:   "constant",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Lexemes with a fixed meaning in the language.
const (
	IF        = "if"
	THEN      = "then"
	ELSE      = "else"
	SEMICOLON = ";"
	LT        = "<"
	GT        = ">"
	EQ        = "="
	ASSIGN_OP = ":="
)

var known = map[string]Kind{
	IF:        KEYWORD,
	THEN:      KEYWORD,
	ELSE:      KEYWORD,
	SEMICOLON: DELIMITER,
	LT:        COMPARISON,
	GT:        COMPARISON,
	EQ:        COMPARISON,
	ASSIGN_OP: ASSIGN,
}

// Lookup reports the kind of a lexeme from the fixed table.
func Lookup(text string) (Kind, bool) {
	k, ok := known[text]
	return k, ok
}

// LookupIdent classifies a scanned word as keyword or identifier.
func LookupIdent(ident string) Kind {
	if k, ok := known[ident]; ok && k == KEYWORD {
		return k
	}
	return IDENTIFIER
}

// IsKnown reports whether text is one of the recognized lexemes.
func IsKnown(text string) bool {
	_, ok := known[text]
	return ok
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// IsValid reports whether the position was recorded by the scanner.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind     Kind
	Text     string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// Is reports whether the token carries the given fixed lexeme.
func (t Token) Is(text string) bool {
	return t.Text == text && t.Kind != IDENTIFIER && t.Kind != CONSTANT
}

// IsValue reports whether the token can stand as an operand.
func (t Token) IsValue() bool {
	return t.Kind == IDENTIFIER || t.Kind == CONSTANT
}
