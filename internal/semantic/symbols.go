package semantic

import (
	"triadc/token"
)

type Symbol struct {
	Name     string
	Position token.Position // first assignment
	Reads    int
}

// SymbolTable records assigned identifiers in the order they were first assigned.
// Triad programs have a single flat scope.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Define records an assignment to name. Reassignments keep the first position.
func (st *SymbolTable) Define(name string, pos token.Position) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	symbol := &Symbol{Name: name, Position: pos}
	st.symbols[name] = symbol
	st.order = append(st.order, symbol)
	return symbol
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	return st.symbols[name]
}

// Symbols returns every defined symbol in definition order.
func (st *SymbolTable) Symbols() []*Symbol {
	return st.order
}
