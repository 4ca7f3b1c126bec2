package ast

import (
	"fmt"
	"strings"
)

// BinOp is a binary arithmetic operation.
// Type and ConstValue are empty after parsing and filled by the decorator.
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr

	Type       Type
	ConstValue *Value // Folded value, only when both operands are literals.
}

func (*BinOp) expr() {}

func (b *BinOp) Dump() string { return dumpNode(b) }

func (b *BinOp) dump(sb *strings.Builder, depth int) {
	pad(sb, depth)
	fmt.Fprintf(sb, "BinOp(op='%s')", b.Op)
	if b.Type != TypeUnknown || b.ConstValue != nil {
		constStr := "none"
		if b.ConstValue != nil {
			constStr = b.ConstValue.String()
		}
		fmt.Fprintf(sb, " [type=%s const=%s]", b.Type, constStr)
	}
	sb.WriteString("\n")
	b.Left.dump(sb, depth+1)
	b.Right.dump(sb, depth+1)
}

// Const is a numeric literal. Its type is fixed by the lexeme shape.
type Const struct {
	Value Value
	Type  Type
}

// NewConst builds a literal typed after its value.
func NewConst(v Value) *Const {
	return &Const{Value: v, Type: v.Type()}
}

func (*Const) expr() {}

func (c *Const) Dump() string { return dumpNode(c) }

func (c *Const) dump(sb *strings.Builder, depth int) {
	pad(sb, depth)
	fmt.Fprintf(sb, "Const(%s) [type=%s]\n", c.Value, c.Type)
}

// ID references a declared variable.
type ID struct {
	Name string
	Type Type // Unknown when the name did not resolve.
}

func (*ID) expr() {}

func (i *ID) Dump() string { return dumpNode(i) }

func (i *ID) dump(sb *strings.Builder, depth int) {
	pad(sb, depth)
	fmt.Fprintf(sb, "Id(%s) [type=%s]\n", i.Name, i.Type)
}
