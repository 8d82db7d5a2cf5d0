// Package symtab implements the first-seen-wins Symbol Table described in
// spec.md §3: an idempotent record of every identifier lexeme the scanner
// has produced, keyed by lexeme, along with where it was first seen.
package symtab

import "github.com/Andres-QG/transpyler/pkg/token"

// Entry records where an identifier lexeme was first observed, per
// spec.md §3's {symbol, line, column, token_kind} Symbol Entry.
type Entry struct {
	Name   string
	Line   int
	Column int
	Kind   token.Kind
}

// SymbolTable is a first-seen-wins map from identifier lexeme to Entry.
// Unlike the Python original it is grounded on (which raises on duplicate
// insertion), Add here is idempotent: inserting the same name twice keeps
// the first entry and reports no error, per spec.md §3.
type SymbolTable struct {
	table map[string]Entry
	order []string
}

// New returns an empty SymbolTable.
func New() *SymbolTable {
	return &SymbolTable{table: make(map[string]Entry)}
}

// Add inserts name at (line, column) with the given token kind if it has
// not been seen before. It reports whether the insertion happened; a false
// return means name was already present and its original Entry was left
// untouched.
func (s *SymbolTable) Add(name string, line, column int, kind token.Kind) bool {
	if _, ok := s.table[name]; ok {
		return false
	}
	s.table[name] = Entry{Name: name, Line: line, Column: column, Kind: kind}
	s.order = append(s.order, name)
	return true
}

// Exists reports whether name has been recorded.
func (s *SymbolTable) Exists(name string) bool {
	_, ok := s.table[name]
	return ok
}

// Get returns the Entry for name and whether it was found.
func (s *SymbolTable) Get(name string) (Entry, bool) {
	e, ok := s.table[name]
	return e, ok
}

// Remove deletes name from the table, if present.
func (s *SymbolTable) Remove(name string) {
	if _, ok := s.table[name]; !ok {
		return
	}
	delete(s.table, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports how many distinct identifiers have been recorded.
func (s *SymbolTable) Len() int { return len(s.table) }

// Entries returns every recorded Entry in first-seen order.
func (s *SymbolTable) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.table[n])
	}
	return out
}
