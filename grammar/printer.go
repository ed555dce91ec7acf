package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.StringWithIndent(0))
	}
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	if s.Conditional != nil {
		return s.Conditional.StringWithIndent(level)
	}
	if s.Assignment != nil {
		return indent(level) + s.Assignment.String() + "\n"
	}
	return ""
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s := %s;", a.Target, a.Value.String())
}

func (c *Conditional) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%sif %s then\n", indent(level), c.Condition.String()))
	for _, s := range c.Then {
		b.WriteString(s.StringWithIndent(level + 1))
	}
	if c.Else != nil {
		b.WriteString(indent(level) + "else\n")
		b.WriteString(c.Else.StringWithIndent(level + 1))
	}
	return b.String()
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left.String(), c.Operator, c.Right.String())
}

func (v *Value) String() string {
	if v.Ident != nil {
		return *v.Ident
	}
	if v.Number != nil {
		return *v.Number
	}
	return ""
}
