package ast

import (
	"fmt"
	"strings"
)

func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeNode(b *strings.Builder, n *Node, level int) {
	b.WriteString(strings.Repeat("  ", level))
	switch {
	case n.Token != nil:
		b.WriteString(fmt.Sprintf("%s (%s)\n", n.Token.Text, n.Token.Kind))
		return
	case n.Kind == OPERAND:
		b.WriteString(fmt.Sprintf("Operand %s\n", n.Text()))
		return
	}

	b.WriteString(n.Kind.String() + "\n")
	for _, c := range n.Children {
		writeNode(b, c, level+1)
	}
}

// Source renders a subtree back to single-line source text.
func Source(n *Node) string {
	switch n.Kind {
	case LEAF, OPERAND:
		return n.Text()
	case ASSIGNMENT:
		return fmt.Sprintf("%s %s %s;", n.Children[0].Text(), n.Children[1].Text(), n.Children[2].Text())
	case COMPARISON:
		return fmt.Sprintf("%s %s %s", n.Children[0].Text(), n.Children[1].Text(), n.Children[2].Text())
	case CONDITIONAL:
		s := fmt.Sprintf("if %s then %s", Source(n.Condition()), Source(n.ThenBlock()))
		if n.HasElse() {
			s += " else " + Source(n.ElseBlock())
		}
		return s
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, Source(c))
	}
	return strings.Join(parts, " ")
}
