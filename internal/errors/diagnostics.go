package errors

import (
	"fmt"
	"strings"

	"triadc/internal/parser"
	"triadc/token"
)

// DiagnosticBuilder provides a fluent interface for creating compiler errors with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder
func NewDiagnostic(code, message string, pos token.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a builder for a diagnostic that does not block compilation
func NewWarning(code, message string, pos token.Position) *DiagnosticBuilder {
	b := NewDiagnostic(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	if length > 0 {
		b.err.Length = length
	}
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos token.Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// FromScanError converts a lexical error.
func FromScanError(e parser.ScanError) CompilerError {
	if e.Message == "unterminated comment" {
		return NewDiagnostic(ErrorUnterminatedComment, e.Message, e.Position).
			WithLength(e.Length).
			WithSuggestion("close the comment with '}'").
			WithNote("scanning continues right after the '{'").
			Build()
	}

	builder := NewDiagnostic(ErrorUnknownLexeme, e.Message, e.Position).WithLength(e.Length)
	switch {
	case strings.Contains(e.Message, `":"`):
		builder = builder.WithReplacement("use the assignment operator", token.ASSIGN_OP, e.Position, 1)
	case strings.Contains(e.Message, `"}"`):
		builder = builder.WithNote("'}' only closes a comment opened with '{'")
	}
	return builder.
		WithHelp("the language knows identifiers, numbers, 'if', 'then', 'else', ':=', '<', '>', '=' and ';'").
		Build()
}

// FromScanErrors converts lexical errors in order.
func FromScanErrors(errs []parser.ScanError) []CompilerError {
	out := make([]CompilerError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FromScanError(e))
	}
	return out
}

// FromGrammarViolation converts the violation that aborted a parse.
func FromGrammarViolation(v *parser.GrammarViolation) CompilerError {
	builder := NewDiagnostic(violationCode(v.Kind), v.Message, v.Position).WithLength(v.Length)

	switch v.Kind {
	case parser.UnterminatedStatement:
		builder = builder.WithSuggestion("end the statement with ';'")
	case parser.InvalidStatementStart:
		builder = builder.WithNote("statements are assignments 'x := value;' or conditionals 'if a < b then ...'")
	case parser.UnexpectedOperator:
		if strings.HasPrefix(v.Message, "expected ':='") {
			builder = builder.WithReplacement("assign with ':='", token.ASSIGN_OP, v.Position, v.Length)
		} else {
			builder = builder.WithSuggestion("compare with '<', '>' or '='")
		}
	case parser.InvalidOperand:
		builder = builder.WithNote("operands are identifiers or numeric constants")
	case parser.InvalidArity:
		builder = builder.WithNote("assignments and comparisons take exactly two operands")
	case parser.MissingThen:
		builder = builder.WithSuggestion("add 'then' between the condition and the statement")
	}

	return builder.Build()
}

func violationCode(kind parser.ViolationKind) string {
	switch kind {
	case parser.UnterminatedStatement:
		return ErrorUnterminatedStatement
	case parser.InvalidStatementStart:
		return ErrorInvalidStatementStart
	case parser.UnexpectedOperator:
		return ErrorUnexpectedOperator
	case parser.InvalidOperand:
		return ErrorInvalidOperand
	case parser.InvalidArity:
		return ErrorInvalidArity
	case parser.MissingThen:
		return ErrorMissingThen
	}
	return ErrorGenericGrammar
}

// Collect gathers all diagnostics of a ParseSource call in reporting order.
func Collect(scanErrors []parser.ScanError, violation *parser.GrammarViolation) []CompilerError {
	out := FromScanErrors(scanErrors)
	if violation != nil {
		out = append(out, FromGrammarViolation(violation))
	}
	return out
}

// HasErrors reports whether any diagnostic is at error level.
func HasErrors(errs []CompilerError) bool {
	for _, err := range errs {
		if err.Level == Error {
			return true
		}
	}
	return false
}

// Summary renders a one-line count like "2 errors".
func Summary(errs []CompilerError) string {
	if len(errs) == 1 {
		return "1 error"
	}
	return fmt.Sprintf("%d errors", len(errs))
}
