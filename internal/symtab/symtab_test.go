package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"triadc/internal/parser"
)

func TestRehashInsertAndFind(t *testing.T) {
	table := NewRehashTable(4)

	assert.True(t, table.Insert("a")) // 97 % 4 = 1
	assert.True(t, table.Insert("e")) // 101 % 4 = 1, collides
	assert.False(t, table.Insert("a"))
	assert.Equal(t, 2, table.Len())

	attempts, ok := table.Find("a")
	assert.True(t, ok)
	assert.Equal(t, 1, attempts)

	attempts, ok = table.Find("e")
	assert.True(t, ok)
	assert.Equal(t, 2, attempts)

	attempts, ok = table.Find("i") // 105 % 4 = 1, stops at the first empty slot
	assert.False(t, ok)
	assert.Equal(t, 3, attempts)
}

func TestRehashFullTable(t *testing.T) {
	table := NewRehashTable(2)
	require.True(t, table.Insert("a"))
	require.True(t, table.Insert("b"))

	assert.False(t, table.Insert("c"))

	attempts, ok := table.Find("c")
	assert.False(t, ok)
	assert.Equal(t, 2, attempts)
}

// Every id hashes to slot 1 of 6; the probes visit 1, 2, 4, 1, 5, 4 and
// never reach slots 0 and 3.
func TestRehashUnreachableSlots(t *testing.T) {
	table := NewRehashTable(6)
	for _, id := range []string{"a", "g", "m", "s"} {
		require.True(t, table.Insert(id), id)
	}

	assert.False(t, table.Insert("y"))
	assert.Equal(t, 4, table.Len())

	attempts, ok := table.Find("y")
	assert.False(t, ok)
	assert.Equal(t, 6, attempts)
}

func TestCompareMarksIdentifiersThatDidNotFit(t *testing.T) {
	report := Compare([]string{"a", "g", "m", "s", "y"}, 6)
	require.Len(t, report.Entries, 5)
	assert.Equal(t, 1, report.Missing)

	for _, e := range report.Entries[:4] {
		assert.True(t, e.Stored, e.ID)
	}
	missing := report.Entries[4]
	assert.Equal(t, "y", missing.ID)
	assert.False(t, missing.Stored)

	// a, g, m, s take 1, 2, 3 and 5 probes
	assert.InDelta(t, 2.75, report.RehashAverage, 1e-9)
}

func TestRehashDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultTableSize, NewRehashTable(0).Size())
}

func TestBinaryTree(t *testing.T) {
	tree := NewBinaryTree()
	tree.Fill([]string{"m", "c", "x", "a", "c"})
	assert.Equal(t, 4, tree.Len())

	tests := []struct {
		id       string
		attempts int
		found    bool
	}{
		{"m", 1, true},
		{"c", 2, true},
		{"x", 2, true},
		{"a", 3, true},
		{"z", 2, false},
		{"b", 3, false},
	}
	for _, tt := range tests {
		attempts, ok := tree.Find(tt.id)
		assert.Equal(t, tt.found, ok, tt.id)
		assert.Equal(t, tt.attempts, attempts, tt.id)
	}
}

func TestBinaryTreeRefill(t *testing.T) {
	tree := NewBinaryTree()
	tree.Fill([]string{"a", "b"})
	tree.Fill(nil)

	assert.Equal(t, 0, tree.Len())
	_, ok := tree.Find("a")
	assert.False(t, ok)
}

func TestCompareFromSource(t *testing.T) {
	tokens, errs := parser.SplitResults(parser.Tokenize("alpha := 1; beta := alpha; if beta > gamma then alpha := 2;"))
	require.Empty(t, errs)

	ids := Identifiers(tokens)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, ids)

	report := Compare(ids, DefaultTableSize)
	require.Len(t, report.Entries, 3)
	assert.Zero(t, report.Missing)
	assert.True(t, report.Entries[0].Stored)
	assert.Equal(t, 1, report.Entries[0].RehashAttempts)
	assert.Equal(t, 1, report.Entries[0].TreeAttempts)
	assert.GreaterOrEqual(t, report.TreeAverage, 1.0)
	assert.GreaterOrEqual(t, report.RehashAverage, 1.0)
}

func TestCompareEmpty(t *testing.T) {
	report := Compare(nil, 8)
	assert.Empty(t, report.Entries)
	assert.Zero(t, report.RehashAverage)
}
