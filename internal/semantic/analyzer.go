// Package semantic reports identifier warnings on parse trees. None of its
// findings block compilation.
package semantic

import (
	"fmt"
	"unicode/utf8"

	"triadc/internal/ast"
	"triadc/internal/errors"
	"triadc/token"
)

type Analyzer struct {
	errors   []errors.CompilerError
	symbols  *SymbolTable    // identifiers assigned so far, in source order
	reported map[string]bool // unassigned identifiers already warned about
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		symbols:  NewSymbolTable(),
		reported: make(map[string]bool),
	}
}

// Analyze walks the statements in source order. Identifiers read before any
// assignment are reported where they are first read; identifiers that are
// assigned but never read are reported at their first assignment.
func (a *Analyzer) Analyze(root *ast.Node) []errors.CompilerError {
	a.errors = nil
	a.symbols = NewSymbolTable()
	a.reported = make(map[string]bool)

	if root == nil {
		return nil
	}

	ast.Walk(root, a.visit)

	for _, symbol := range a.symbols.Symbols() {
		if symbol.Reads == 0 {
			a.addUnusedAssignmentWarning(symbol)
		}
	}
	return a.errors
}

// GetErrors returns the warnings of the last Analyze call
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

// Symbols exposes the table built by the last Analyze call.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

func (a *Analyzer) visit(n *ast.Node) bool {
	switch n.Kind {
	case ast.ASSIGNMENT:
		// the value is read before the target is written: "a := a;" reads an unassigned a
		a.read(n.Children[2])
		target := n.Children[0]
		a.symbols.Define(target.Text(), target.Pos())
		return false
	case ast.COMPARISON:
		a.read(n.Children[0])
		a.read(n.Children[2])
		return false
	}
	return true
}

func (a *Analyzer) read(operand *ast.Node) {
	leaves := ast.Leaves(operand)
	if len(leaves) != 1 || leaves[0].Kind != token.IDENTIFIER {
		return
	}
	tok := leaves[0]

	if symbol := a.symbols.Lookup(tok.Text); symbol != nil {
		symbol.Reads++
		return
	}
	if !a.reported[tok.Text] {
		a.reported[tok.Text] = true
		a.addUnassignedWarning(tok)
	}
}

func (a *Analyzer) addUnassignedWarning(tok token.Token) {
	builder := errors.NewWarning(errors.WarningUnassignedIdentifier,
		fmt.Sprintf("'%s' is read before it is assigned", tok.Text), tok.Position).
		WithLength(utf8.RuneCountInString(tok.Text))

	for _, name := range a.findSimilarVariables(tok.Text) {
		builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", name), name, tok.Position, utf8.RuneCountInString(tok.Text))
	}

	a.errors = append(a.errors, builder.
		WithNote("the name is passed through to the triads unchanged").
		Build())
}

func (a *Analyzer) addUnusedAssignmentWarning(symbol *Symbol) {
	a.errors = append(a.errors, errors.NewWarning(errors.WarningUnusedAssignment,
		fmt.Sprintf("value assigned to '%s' is never read", symbol.Name), symbol.Position).
		WithLength(utf8.RuneCountInString(symbol.Name)).
		WithHelp(fmt.Sprintf("read '%s' in a comparison or another assignment, or remove it", symbol.Name)).
		Build())
}
