package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos         lexer.Position
	EndPos      lexer.Position
	Conditional *Conditional `parser:"  @@"`
	Assignment  *Assignment  `parser:"| @@"`
}

type Assignment struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Target string `parser:"@Ident \":=\""`
	Value  *Value `parser:"@@ \";\""`
}

// Conditional binds an else to the nearest if. The then branch holds several
// statements only when an else follows; see hoist.
type Conditional struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Condition *Comparison  `parser:"\"if\" @@ \"then\""`
	Then      []*Statement `parser:"@@+"`
	Else      *Statement   `parser:"( \"else\" @@ )?"`
}

// hoist moves the statements a then branch took greedily, without an else to
// close it, back into the enclosing sequence.
func hoist(stmts []*Statement) []*Statement {
	out := make([]*Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s)
		c := s.Conditional
		if c == nil {
			continue
		}

		c.Then = hoist(c.Then)
		if c.Else == nil {
			out = append(out, c.Then[1:]...)
			c.Then = c.Then[:1]
			c.EndPos = c.Then[0].EndPos
		} else {
			tail := hoist([]*Statement{c.Else})
			c.Else = tail[0]
			out = append(out, tail[1:]...)
			c.EndPos = c.Else.EndPos
		}
		s.EndPos = c.EndPos
	}
	return out
}

type Comparison struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Left     *Value `parser:"@@"`
	Operator string `parser:"@Compare"`
	Right    *Value `parser:"@@"`
}

type Value struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Ident  *string `parser:"  @Ident"`
	Number *string `parser:"| @Number"`
}
