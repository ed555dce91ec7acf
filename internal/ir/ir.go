package ir

// This file provides the main entry point for the IR system.
// The IR is a flat list of triads whose operands may refer back to earlier
// triads by their 1-based position.

import (
	"triadc/internal/ast"
)

// Compile lowers a parse tree and runs the default optimization pipeline.
func Compile(root *ast.Node) *Compilation {
	triads := BuildTriads(root)
	return NewOptimizationPipeline().Run(triads)
}

// PrintProgram returns the numbered listing of the final triads.
func PrintProgram(c *Compilation) string {
	return Print(c.Final)
}
