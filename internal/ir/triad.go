package ir

import (
	"fmt"
	"strconv"
	"strings"

	"triadc/token"
)

// Operators that only exist in the intermediate representation.
const (
	OpIf   = "if"
	OpJump = "jmp"
	OpSame = "SAME"
)

// Operand is a plain name or constant, or a back-reference "^N" to the
// N-th triad (1-based) of the same list.
type Operand string

func Ref(index int) Operand {
	return Operand("^" + strconv.Itoa(index))
}

func (o Operand) IsRef() bool {
	return strings.HasPrefix(string(o), "^")
}

// RefIndex returns the 1-based triad index of a back-reference.
func (o Operand) RefIndex() (int, bool) {
	if !o.IsRef() {
		return 0, false
	}
	n, err := strconv.Atoi(string(o[1:]))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

type Category int

const (
	Assignment Category = iota
	Comparison
	Branch
	Jump
	Marker
)

func (c Category) String() string {
	switch c {
	case Assignment:
		return "assignment"
	case Comparison:
		return "comparison"
	case Branch:
		return "branch"
	case Jump:
		return "jump"
	case Marker:
		return "marker"
	}
	return "unknown"
}

// Triad is a three-address instruction: operator plus two operands.
type Triad struct {
	Operator token.Token
	Left     Operand
	Right    Operand
}

func (t Triad) String() string {
	return fmt.Sprintf("%s (%s, %s)", t.Operator.Text, t.Left, t.Right)
}

func (t Triad) Category() Category {
	switch {
	case t.Operator.Text == OpSame:
		return Marker
	case t.Operator.Text == OpJump:
		return Jump
	case t.Operator.Text == OpIf:
		return Branch
	case t.Operator.Kind == token.ASSIGN:
		return Assignment
	}
	return Comparison
}

func (t Triad) IsSame() bool {
	return t.Category() == Marker
}

// SameTarget returns the 1-based index a SAME marker stands for.
func (t Triad) SameTarget() (int, bool) {
	if !t.IsSame() {
		return 0, false
	}
	n, err := strconv.Atoi(string(t.Left))
	return n, err == nil && n > 0
}

// Equivalent compares operator text and operands, ignoring positions.
func (t Triad) Equivalent(other Triad) bool {
	return t.Operator.Text == other.Operator.Text && t.Left == other.Left && t.Right == other.Right
}

func newMarker(replaced Triad, target int) Triad {
	return Triad{
		Operator: token.Token{Kind: token.COMPARISON, Text: OpSame, Position: replaced.Operator.Position},
		Left:     Operand(strconv.Itoa(target)),
		Right:    "0",
	}
}

func equalTriads(a, b []Triad) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equivalent(b[i]) {
			return false
		}
	}
	return true
}
