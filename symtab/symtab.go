// Package symtab implements the flat, global symbol table.
package symtab

import (
	"fmt"

	"go.creack.net/tacfront/ast"
)

// ScopeGlobal is the only scope of the language.
const ScopeGlobal = "global"

// Entry describes a declared variable.
type Entry struct {
	Name   string
	Type   ast.Type
	Scope  string
	Offset int // Slot index, in declaration order starting at 0.
}

func (e Entry) String() string {
	return fmt.Sprintf("%s | type=%s | scope=%s | offset=%d", e.Name, e.Type, e.Scope, e.Offset)
}

// DuplicateDeclarationError is returned when a name is declared twice.
type DuplicateDeclarationError struct {
	Name     string
	Previous Entry
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("duplicate declaration of %q (first declared as %s at offset %d)", e.Name, e.Previous.Type, e.Previous.Offset)
}

// UndeclaredIdentifierError is returned when a name has no entry.
type UndeclaredIdentifierError struct {
	Name string
}

func (e *UndeclaredIdentifierError) Error() string {
	return fmt.Sprintf("undeclared identifier %q", e.Name)
}

// Table maps identifiers to their entries. Entries are write-once.
type Table struct {
	entries []Entry        // Insertion order.
	index   map[string]int // Name -> position in entries.
}

func New() *Table {
	return &Table{
		index: map[string]int{},
	}
}

// Insert declares name with the next sequential offset.
func (t *Table) Insert(name string, typ ast.Type) (Entry, error) {
	if i, ok := t.index[name]; ok {
		return Entry{}, &DuplicateDeclarationError{Name: name, Previous: t.entries[i]}
	}
	e := Entry{
		Name:   name,
		Type:   typ,
		Scope:  ScopeGlobal,
		Offset: len(t.entries),
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, e)
	return e, nil
}

func (t *Table) Lookup(name string) (Entry, error) {
	i, ok := t.index[name]
	if !ok {
		return Entry{}, &UndeclaredIdentifierError{Name: name}
	}
	return t.entries[i], nil
}

// Entries returns a copy of the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Len() int { return len(t.entries) }
