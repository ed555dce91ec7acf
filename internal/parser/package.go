package parser

import (
	"errors"

	"triadc/internal/ast"
)

// ParseSource tokenizes and parses source. Any lexical error blocks parsing,
// in which case only the scan errors are returned.
func ParseSource(source string) (*ast.Node, []ScanError, *GrammarViolation) {
	tokens, scanErrors := SplitResults(Tokenize(source))
	if len(scanErrors) > 0 {
		return nil, scanErrors, nil
	}

	root, err := Parse(tokens)
	if err != nil {
		var violation *GrammarViolation
		if errors.As(err, &violation) {
			return nil, nil, violation
		}
		return nil, nil, &GrammarViolation{Message: err.Error()}
	}
	return root, nil, nil
}
