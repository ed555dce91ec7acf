package ast

import "triadc/token"

type NodeKind int

const (
	PROGRAM NodeKind = iota
	ASSIGNMENT
	COMPARISON
	CONDITIONAL
	BLOCK
	OPERAND
	LEAF
)

var nodeKindNames = [...]string{
	PROGRAM:     "Program",
	ASSIGNMENT:  "Assignment",
	COMPARISON:  "Comparison",
	CONDITIONAL: "Conditional",
	BLOCK:       "Block",
	OPERAND:     "Operand",
	LEAF:        "Leaf",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "Unknown"
	}
	return nodeKindNames[k]
}

// Node is a parse tree node. Leaves carry a token; interior nodes group
// their children and own them exclusively.
type Node struct {
	Kind     NodeKind
	Token    *token.Token
	Children []*Node
}

func NewLeaf(tok token.Token) *Node {
	return &Node{Kind: LEAF, Token: &tok}
}

func NewNode(kind NodeKind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewOperand wraps a value token the same way for assignments and comparisons.
func NewOperand(tok token.Token) *Node {
	return NewNode(OPERAND, NewLeaf(tok))
}

// NewBinary builds the three-child shape shared by assignment and comparison.
func NewBinary(kind NodeKind, left, op, right token.Token) *Node {
	return NewNode(kind, NewOperand(left), NewLeaf(op), NewOperand(right))
}

func (n *Node) AddNode(child *Node) {
	n.Children = append(n.Children, child)
}

func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// Text returns the token text of a leaf or of the single leaf under an operand.
func (n *Node) Text() string {
	switch {
	case n.Token != nil:
		return n.Token.Text
	case n.Kind == OPERAND && len(n.Children) == 1:
		return n.Children[0].Text()
	}
	return ""
}

// Pos returns the position of the first token in the subtree.
func (n *Node) Pos() token.Position {
	if n.Token != nil {
		return n.Token.Position
	}
	for _, c := range n.Children {
		if p := c.Pos(); p.IsValid() {
			return p
		}
	}
	return token.Position{}
}

// End returns the position just past the last token in the subtree.
func (n *Node) End() token.Position {
	if n.Token != nil {
		p := n.Token.Position
		p.Column += len([]rune(n.Token.Text))
		p.Offset += len(n.Token.Text)
		return p
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if p := n.Children[i].End(); p.IsValid() {
			return p
		}
	}
	return token.Position{}
}

// HasLeaf reports whether a direct child is a leaf matching pred.
func (n *Node) HasLeaf(pred func(token.Token) bool) bool {
	for _, c := range n.Children {
		if c.Token != nil && pred(*c.Token) {
			return true
		}
	}
	return false
}

// Conditional accessors. The layout is
// [if, comparison, then, block] or [if, comparison, then, block, else, block].

func (n *Node) Condition() *Node {
	return n.Children[1]
}

func (n *Node) ThenBlock() *Node {
	return n.Children[3]
}

func (n *Node) ElseBlock() *Node {
	if len(n.Children) < 6 {
		return nil
	}
	return n.Children[5]
}

func (n *Node) HasElse() bool {
	return n.Kind == CONDITIONAL && len(n.Children) == 6
}

// Walk visits the subtree in pre-order until fn returns false.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Leaves returns the tokens of the subtree in source order.
func Leaves(n *Node) []token.Token {
	var out []token.Token
	Walk(n, func(node *Node) bool {
		if node.Token != nil {
			out = append(out, *node.Token)
		}
		return true
	})
	return out
}
