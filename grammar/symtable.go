package grammar

import (
	"fmt"
	"sort"
)

// Symbol table for rule names. A symbol is created for every rule name, be
// it defined by a rule or mentioned by a reference only.

// --- Symbols ---------------------------------------------------------------

// Symbol is the entry type of symbol tables.
type Symbol struct {
	name string
	Rule *Rule    // rule defining this symbol, nil if undefined
	Refs []string // names of rules referencing this symbol
}

// NewSymbol creates a new, undefined symbol.
func NewSymbol(nm string) *Symbol {
	return &Symbol{name: nm}
}

// Defined is true if a rule has been assigned to the symbol.
func (s *Symbol) Defined() bool {
	return s.Rule != nil
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<sym '%s' defined=%v refs=%d>", s.name, s.Defined(), len(s.Refs))
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store symbols (map-like semantics).
type SymbolTable struct {
	Table map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Table: make(map[string]*Symbol),
	}
}

// Symbols creates a symbol table for all rule names of a grammar, including
// names which are referenced, but never defined. If a name is defined by more
// than one rule, the symbol holds the first one.
func Symbols(g *Grammar) *SymbolTable {
	t := NewSymbolTable()
	for _, r := range g.Rules {
		if sym, _ := t.ResolveOrDefineSymbol(r.Name); sym.Rule == nil {
			sym.Rule = r
		}
	}
	g.Walk(func(r *Rule, p Part) {
		if ref, ok := p.(Reference); ok {
			sym, _ := t.ResolveOrDefineSymbol(ref.Name)
			sym.Refs = append(sym.Refs, r.Name)
		}
	})
	return t
}

// ResolveSymbol checks for a symbol in the symbol table.
// Returns a symbol or nil.
//
func (t *SymbolTable) ResolveSymbol(name string) *Symbol {
	return t.Table[name]
}

// ResolveRule returns the rule defined for name, or nil.
func (t *SymbolTable) ResolveRule(name string) *Rule {
	if sym := t.Table[name]; sym != nil {
		return sym.Rule
	}
	return nil
}

// ResolveOrDefineSymbol finds
// a symbol in the table, inserts a new one if not found.
// Returns the symbol and a flag, signalling wether the symbol
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineSymbol(name string) (*Symbol, bool) {
	if len(name) == 0 {
		return nil, false
	}
	found := true
	sym := t.ResolveSymbol(name)
	if sym == nil { // if not already there, insert it
		sym, _ = t.DefineSymbol(name)
		found = false
	}
	return sym, found
}

// DefineSymbol creates a new symbol to store into the symbol table.
// The symbol's name may not be empty.
// Overwrites an existing symbol with this name, if any.
// Returns the new symbol and the previously stored symbol (or nil).
//
func (t *SymbolTable) DefineSymbol(name string) (*Symbol, *Symbol) {
	if len(name) == 0 {
		return nil, nil
	}
	sym := NewSymbol(name)
	old := t.ResolveSymbol(name)
	t.Table[name] = sym
	return sym, old
}

// Each iterates over each symbol in the table, ordered by name, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Symbol)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}
