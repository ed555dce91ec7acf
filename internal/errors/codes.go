package errors

// Error codes for the triad compiler
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Lexical errors
// E0200-E0299: Grammar errors
// E0900-E0999: Reserved for tooling errors
// W0001-W0099: Identifier warnings

const (
	// Lexical errors (E0100-E0199)

	// E0100: A '{' with no '}' anywhere after it
	ErrorUnterminatedComment = "E0100"

	// E0101: A character outside the lexeme table
	ErrorUnknownLexeme = "E0101"

	// Grammar errors (E0200-E0299)

	// E0200: No ';' left before the end of input
	ErrorUnterminatedStatement = "E0200"

	// E0201: Statement starts with something other than an identifier or 'if'
	ErrorInvalidStatementStart = "E0201"

	// E0202: Wrong operator in an assignment or comparison
	ErrorUnexpectedOperator = "E0202"

	// E0203: Operand is neither an identifier nor a constant
	ErrorInvalidOperand = "E0203"

	// E0204: Too few or too many tokens in an assignment or comparison
	ErrorInvalidArity = "E0204"

	// E0205: 'if' without 'then' before the statement ends
	ErrorMissingThen = "E0205"

	// E0299: Grammar error without a more specific code
	ErrorGenericGrammar = "E0299"

	// Warnings (W0001-W0099)

	// W0001: Identifier is read before any assignment to it
	WarningUnassignedIdentifier = "W0001"

	// W0002: Identifier is assigned but never read
	WarningUnusedAssignment = "W0002"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnterminatedComment:
		return "Comment is opened with '{' but never closed"
	case ErrorUnknownLexeme:
		return "Character is not part of the language"
	case ErrorUnterminatedStatement:
		return "Statement is not terminated by ';'"
	case ErrorInvalidStatementStart:
		return "Statement must start with an identifier or 'if'"
	case ErrorUnexpectedOperator:
		return "Operator does not fit the statement"
	case ErrorInvalidOperand:
		return "Only identifiers and constants can be operands"
	case ErrorInvalidArity:
		return "Assignments and comparisons take exactly two operands"
	case ErrorMissingThen:
		return "Conditional is missing 'then'"
	case ErrorGenericGrammar:
		return "Grammar error"
	case WarningUnassignedIdentifier:
		return "Identifier is read before it is assigned"
	case WarningUnusedAssignment:
		return "Assigned value is never read"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Lexical"
	case code >= "E0200" && code < "E0300":
		return "Grammar"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
