package ir

import (
	"fmt"

	"triadc/internal/ast"
	"triadc/token"
)

// BuildTriads lowers a parse tree into triads in visitation order. The tree
// must come from a successful parse; anything else panics.
func BuildTriads(root *ast.Node) []Triad {
	var triads []Triad
	for _, stmt := range root.Children {
		triads, _ = appendStatement(triads, stmt)
	}
	return triads
}

type statementKind int

const (
	assignmentStatement statementKind = iota
	fullConditionalStatement
	conditionalStatement
	blockStatement
)

// classify inspects the node's own leaves the way the tree is laid out.
func classify(n *ast.Node) statementKind {
	switch {
	case n.HasLeaf(func(t token.Token) bool { return t.Kind == token.ASSIGN }):
		return assignmentStatement
	case n.HasLeaf(func(t token.Token) bool { return t.Is(token.ELSE) }):
		return fullConditionalStatement
	case n.HasLeaf(func(t token.Token) bool { return t.Is(token.IF) }):
		return conditionalStatement
	case n.Kind == ast.BLOCK:
		return blockStatement
	}
	panic(fmt.Sprintf("ir: cannot lower %s node", n.Kind))
}

// The helpers below return the extended slice and the 1-based index of the
// triad holding the node's result.

func appendStatement(triads []Triad, n *ast.Node) ([]Triad, int) {
	switch classify(n) {
	case assignmentStatement:
		return appendBinary(triads, n)
	case fullConditionalStatement:
		return appendFullConditional(triads, n)
	case conditionalStatement:
		return appendConditional(triads, n)
	default:
		return appendBlock(triads, n)
	}
}

func appendBlock(triads []Triad, n *ast.Node) ([]Triad, int) {
	if len(n.Children) == 0 {
		panic("ir: empty block")
	}
	var result int
	for _, stmt := range n.Children {
		triads, result = appendStatement(triads, stmt)
	}
	return triads, result
}

// appendBinary emits "op (left, right)" for an assignment or comparison node.
func appendBinary(triads []Triad, n *ast.Node) ([]Triad, int) {
	triads = append(triads, Triad{
		Operator: *n.Children[1].Token,
		Left:     Operand(n.Children[0].Text()),
		Right:    Operand(n.Children[2].Text()),
	})
	return triads, len(triads)
}

func appendConditional(triads []Triad, n *ast.Node) ([]Triad, int) {
	triads, cond := appendBinary(triads, n.Condition())
	triads, body := appendStatement(triads, n.ThenBlock())

	triads = append(triads, Triad{
		Operator: *n.Children[0].Token,
		Left:     Ref(cond),
		Right:    Ref(body),
	})
	return triads, len(triads)
}

// appendFullConditional emits the comparison, both branches, the if triad
// and a trailing jmp to the else result. The jmp is the node's result.
func appendFullConditional(triads []Triad, n *ast.Node) ([]Triad, int) {
	ifTok := *n.Children[0].Token

	triads, cond := appendBinary(triads, n.Condition())
	triads, thenResult := appendStatement(triads, n.ThenBlock())
	triads, elseResult := appendStatement(triads, n.ElseBlock())

	jmpTok := ifTok
	jmpTok.Text = OpJump

	triads = append(triads,
		Triad{Operator: ifTok, Left: Ref(cond), Right: Ref(thenResult)},
		Triad{Operator: jmpTok, Left: "1", Right: Ref(elseResult)},
	)
	return triads, len(triads)
}
