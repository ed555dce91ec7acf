package ir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"triadc/internal/parser"
)

func TestPrintNumberedListing(t *testing.T) {
	out := Print(build(t, "c := 1.15; if c > 1 then c := 2;"))

	expected := strings.Join([]string{
		"1) := (c, 1.15)",
		"2) > (c, 1)",
		"3) := (c, 2)",
		"4) if (^2, ^3)",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestPrintEmpty(t *testing.T) {
	assert.Equal(t, "", Print(nil))
}

func TestPrintCompilation(t *testing.T) {
	root, _, violation := parser.ParseSource("a := 1; a := 1;")
	assert.Nil(t, violation)

	out := PrintCompilation(Compile(root))

	assert.Contains(t, out, "RAW (2 triads):\n  1) := (a, 1)\n  2) := (a, 1)\n")
	assert.Contains(t, out, "OPTIMIZED (2 triads):\n  1) := (a, 1)\n  2) SAME (1, 0)\n")
	assert.Contains(t, out, "FINAL (1 triads):\n  1) := (a, 1)\n")
}

func TestPrintProgram(t *testing.T) {
	root, _, _ := parser.ParseSource("x := 3;")
	assert.Equal(t, "1) := (x, 3)\n", PrintProgram(Compile(root)))
}
