// Package ast defines the syntax tree of the expression language.
//
// The node set is closed: Program, Decl, Assign and the three expression
// variants BinOp, Const and ID. Every traversal switches over all of them.
package ast

import (
	"fmt"
	"strings"
)

// Node is any node of the tree.
type Node interface {
	Dump() string
	dump(sb *strings.Builder, depth int)
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

func pad(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpNode(n Node) string {
	sb := &strings.Builder{}
	n.dump(sb, 0)
	return sb.String()
}

// Program represents the top-level program: declarations first, then statements.
type Program struct {
	Decls []*Decl
	Stmts []*Assign
}

func (p *Program) Dump() string { return dumpNode(p) }

func (p *Program) dump(sb *strings.Builder, depth int) {
	pad(sb, depth)
	sb.WriteString("Program\n")
	pad(sb, depth)
	sb.WriteString(" Decls:\n")
	for _, d := range p.Decls {
		d.dump(sb, depth+2)
	}
	pad(sb, depth)
	sb.WriteString(" Stmts:\n")
	for _, s := range p.Stmts {
		s.dump(sb, depth+2)
	}
}

// Decl declares one or more identifiers of the same type.
type Decl struct {
	Type Type
	IDs  []string
}

func (d *Decl) Dump() string { return dumpNode(d) }

func (d *Decl) dump(sb *strings.Builder, depth int) {
	pad(sb, depth)
	fmt.Fprintf(sb, "Decl(type=%s, ids=[%s])\n", d.Type, strings.Join(d.IDs, ", "))
}
