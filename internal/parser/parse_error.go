package parser

import (
	"fmt"
	"unicode/utf8"

	"triadc/token"
)

type ViolationKind int

const (
	UnterminatedStatement ViolationKind = iota
	InvalidStatementStart
	UnexpectedOperator
	InvalidOperand
	InvalidArity
	MissingThen
)

var violationNames = [...]string{
	UnterminatedStatement: "unterminated statement",
	InvalidStatementStart: "invalid statement start",
	UnexpectedOperator:    "unexpected operator",
	InvalidOperand:        "invalid operand",
	InvalidArity:          "invalid arity",
	MissingThen:           "missing then",
}

func (k ViolationKind) String() string {
	if k < 0 || int(k) >= len(violationNames) {
		return "grammar violation"
	}
	return violationNames[k]
}

// GrammarViolation aborts a parse. Position is zero when no token was available.
type GrammarViolation struct {
	Kind     ViolationKind
	Message  string
	Position token.Position
	Length   int
}

func (e *GrammarViolation) Error() string {
	if !e.Position.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

func newViolation(kind ViolationKind, at token.Token, format string, args ...any) *GrammarViolation {
	return &GrammarViolation{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Position: at.Position,
		Length:   max(1, utf8.RuneCountInString(at.Text)),
	}
}
