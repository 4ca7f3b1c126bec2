// Package decorator implements the semantic pass: it propagates types bottom-up
// and folds binary operations over two literals, annotating the tree in place.
package decorator

import (
	"errors"
	"fmt"

	"go.creack.net/tacfront/ast"
	"go.creack.net/tacfront/symtab"
)

// Decorator annotates trees against one symbol table.
type Decorator struct {
	symtab *symtab.Table

	// Names used in expressions that did not resolve. The walk keeps going
	// with an unknown type and Decorate reports them once it is done.
	unresolved []error
}

func New(table *symtab.Table) *Decorator {
	return &Decorator{symtab: table}
}

// Program decorates a whole program.
func Program(prog *ast.Program, table *symtab.Table) error {
	return New(table).Decorate(prog)
}

// Decorate annotates n and its subtree. Running it again on a decorated tree
// yields the same annotations.
func (d *Decorator) Decorate(n ast.Node) error {
	d.unresolved = nil
	if err := d.decorate(n); err != nil {
		return errors.Join(append([]error{err}, d.unresolved...)...)
	}
	return errors.Join(d.unresolved...)
}

func (d *Decorator) decorate(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Program:
		for _, decl := range n.Decls {
			if err := d.decorate(decl); err != nil {
				return err
			}
		}
		for _, stmt := range n.Stmts {
			if err := d.decorate(stmt); err != nil {
				return err
			}
		}
		return nil
	case *ast.Decl:
		return nil
	case *ast.Assign:
		if err := d.decorate(n.Expr); err != nil {
			return fmt.Errorf("assign %q: %w", n.ID, err)
		}
		if _, err := d.symtab.Lookup(n.ID); err != nil {
			return fmt.Errorf("assign: %w", err)
		}
		return nil
	case *ast.BinOp:
		return d.decorateBinOp(n)
	case *ast.Const:
		return nil
	case *ast.ID:
		entry, err := d.symtab.Lookup(n.Name)
		if err != nil {
			n.Type = ast.TypeUnknown
			d.unresolved = append(d.unresolved, err)
			return nil
		}
		n.Type = entry.Type
		return nil
	default:
		panic(fmt.Errorf("unsupported node type %T", n))
	}
}

func (d *Decorator) decorateBinOp(b *ast.BinOp) error {
	if err := d.decorate(b.Left); err != nil {
		return err
	}
	if err := d.decorate(b.Right); err != nil {
		return err
	}

	b.Type = resultType(typeOf(b.Left), typeOf(b.Right))

	l, lok := b.Left.(*ast.Const)
	r, rok := b.Right.(*ast.Const)
	if !lok || !rok {
		return nil
	}
	v, err := b.Op.Apply(l.Value, r.Value)
	if err != nil {
		return fmt.Errorf("fold %s %s %s: %w", l.Value, b.Op, r.Value, err)
	}
	b.ConstValue = &v
	return nil
}

// resultType is float if either side is float, else int if either side is int.
// An int operand with an unknown one still yields int.
func resultType(l, r ast.Type) ast.Type {
	switch {
	case l == ast.TypeFloat || r == ast.TypeFloat:
		return ast.TypeFloat
	case l == ast.TypeInt || r == ast.TypeInt:
		return ast.TypeInt
	}
	return ast.TypeUnknown
}

func typeOf(e ast.Expr) ast.Type {
	switch e := e.(type) {
	case *ast.BinOp:
		return e.Type
	case *ast.Const:
		return e.Type
	case *ast.ID:
		return e.Type
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}
