package ast

import (
	"fmt"
	"strings"
)

// Assign stores the value of Expr into the declared variable ID.
type Assign struct {
	ID   string
	Expr Expr
}

func (a *Assign) Dump() string { return dumpNode(a) }

func (a *Assign) dump(sb *strings.Builder, depth int) {
	pad(sb, depth)
	fmt.Fprintf(sb, "Assign(id=%s)\n", a.ID)
	a.Expr.dump(sb, depth+1)
}
