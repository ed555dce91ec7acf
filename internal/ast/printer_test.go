package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"triadc/token"
)

func TestProgramString(t *testing.T) {
	program := NewNode(PROGRAM,
		NewBinary(ASSIGNMENT, tok(token.IDENTIFIER, "x", 1), tok(token.ASSIGN, ":=", 3), tok(token.CONSTANT, "1", 6)),
	)

	expected := "Program\n  Assignment\n    Operand x\n    := (assignment operator)\n    Operand 1"
	assert.Equal(t, expected, program.String())
}

func TestConditionalString(t *testing.T) {
	expected := `Conditional
  if (keyword)
  Comparison
    Operand a
    > (comparison operator)
    Operand b
  then (keyword)
  Block
    Assignment
      Operand c
      := (assignment operator)
      Operand 2
  else (keyword)
  Block
    Assignment
      Operand c
      := (assignment operator)
      Operand 3`

	assert.Equal(t, expected, fullConditional().String())
}

func TestSource(t *testing.T) {
	cond := fullConditional()
	assert.Equal(t, "if a > b then c := 2; else c := 3;", Source(cond))
	assert.Equal(t, "a > b", Source(cond.Condition()))

	program := NewNode(PROGRAM,
		NewBinary(ASSIGNMENT, tok(token.IDENTIFIER, "x", 1), tok(token.ASSIGN, ":=", 3), tok(token.CONSTANT, "1", 6)),
		cond,
	)
	assert.Equal(t, "x := 1; if a > b then c := 2; else c := 3;", Source(program))
}
