package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"triadc/internal/errors"
	"triadc/internal/parser"
)

// ConvertScanErrors transforms scanner errors into LSP diagnostics, one per error.
// These handle tokenization issues like unknown lexemes and unterminated comments.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, err := range errors.FromScanErrors(scanErrors) {
		diagnostics = append(diagnostics, convertCompilerError(err, "triadc-scanner"))
	}
	return diagnostics
}

// ConvertGrammarViolation transforms the violation that stopped the parser
// into a single diagnostic.
func ConvertGrammarViolation(violation *parser.GrammarViolation) []protocol.Diagnostic {
	if violation == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{convertCompilerError(errors.FromGrammarViolation(violation), "triadc-parser")}
}

// ConvertWarnings transforms identifier warnings into LSP diagnostics.
func ConvertWarnings(warnings []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, w := range warnings {
		diagnostics = append(diagnostics, convertCompilerError(w, "triadc-semantic"))
	}
	return diagnostics
}

func convertCompilerError(err errors.CompilerError, source string) protocol.Diagnostic {
	line := uint32(max(err.Position.Line-1, 0))     // Convert to 0-based indexing
	start := uint32(max(err.Position.Column-1, 0)) // Convert to 0-based indexing

	length := uint32(err.Length)
	if length == 0 {
		length = 1
	}

	message := err.Message
	if len(err.Suggestions) > 0 {
		message += " (" + err.Suggestions[0].Message + ")"
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + length},
		},
		Severity: ptrSeverity(severity(err.Level)),
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString(source),
		Message:  message,
	}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityError
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
