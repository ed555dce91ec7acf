package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"triadc/internal/errors"
	"triadc/internal/parser"
	"triadc/token"
)

func analyze(t *testing.T, source string) []errors.CompilerError {
	t.Helper()
	root, scanErrors, violation := parser.ParseSource(source)
	require.Empty(t, scanErrors)
	require.Nil(t, violation)
	return NewAnalyzer().Analyze(root)
}

func TestNoWarningsForScenario(t *testing.T) {
	assert.Empty(t, analyze(t, "c := 1.15; a := c; if a > c then a := 2;"))
}

func TestUnassignedIdentifier(t *testing.T) {
	warnings := analyze(t, "a := b; x := a; if x > b then x := a;")

	require.Len(t, warnings, 1)
	w := warnings[0]
	assert.Equal(t, errors.WarningUnassignedIdentifier, w.Code)
	assert.Equal(t, errors.Warning, w.Level)
	assert.Equal(t, "'b' is read before it is assigned", w.Message)
	assert.Equal(t, token.Position{Line: 1, Column: 6, Offset: 5}, w.Position)
	assert.Equal(t, "Warning", errors.GetErrorCategory(w.Code))
	assert.False(t, errors.HasErrors(warnings))
}

func TestSelfAssignmentReadsFirst(t *testing.T) {
	warnings := analyze(t, "a := a; b := a; c := b; if c > 0 then c := 1;")

	require.Len(t, warnings, 1)
	assert.Equal(t, errors.WarningUnassignedIdentifier, warnings[0].Code)
	assert.Equal(t, 6, warnings[0].Position.Column)
}

func TestUnusedAssignment(t *testing.T) {
	warnings := analyze(t, "total := 1; count := 2; if count > 0 then count := 3;")

	require.Len(t, warnings, 1)
	w := warnings[0]
	assert.Equal(t, errors.WarningUnusedAssignment, w.Code)
	assert.Equal(t, "value assigned to 'total' is never read", w.Message)
	assert.Equal(t, 1, w.Position.Column)
	assert.Equal(t, 5, w.Length)
}

func TestSimilarNameSuggestion(t *testing.T) {
	warnings := analyze(t, "total := 1; if totl > 0 then total := 2;")

	require.NotEmpty(t, warnings)
	w := warnings[0]
	assert.Equal(t, errors.WarningUnassignedIdentifier, w.Code)
	require.Len(t, w.Suggestions, 1)
	assert.Equal(t, "total", w.Suggestions[0].Replacement)
}

func TestUnassignedReportedOnce(t *testing.T) {
	warnings := analyze(t, "if a > 0 then b := a; if a < 1 then b := a;")

	var unassigned int
	for _, w := range warnings {
		if w.Code == errors.WarningUnassignedIdentifier {
			unassigned++
		}
	}
	assert.Equal(t, 1, unassigned)
}

func TestSymbolsInDefinitionOrder(t *testing.T) {
	root, _, violation := parser.ParseSource("b := 1; a := b; b := a;")
	require.Nil(t, violation)

	analyzer := NewAnalyzer()
	analyzer.Analyze(root)

	symbols := analyzer.Symbols().Symbols()
	require.Len(t, symbols, 2)
	assert.Equal(t, "b", symbols[0].Name)
	assert.Equal(t, 1, symbols[0].Position.Column)
	assert.Equal(t, 1, symbols[0].Reads)
	assert.Equal(t, "a", symbols[1].Name)
}

func TestAnalyzeNil(t *testing.T) {
	assert.Empty(t, NewAnalyzer().Analyze(nil))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("abc", "abc"))
	assert.Equal(t, 1, levenshteinDistance("totl", "total"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 1, levenshteinDistance("größe", "gröse"))
}
