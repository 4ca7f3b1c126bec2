// Package tac lowers decorated expression trees to three-address code.
package tac

import (
	"fmt"
	"strconv"

	"go.creack.net/tacfront/ast"
)

// TempPrefix prefixes generated temporaries: t1, t2, ...
const TempPrefix = "t"

// Instr is one three-address instruction, either "Dest = Arg1" or
// "Dest = Arg1 Op Arg2".
type Instr struct {
	Dest string
	Arg1 string
	Op   ast.Op // Empty for copies.
	Arg2 string
}

func (i Instr) String() string {
	if i.Op == "" {
		return i.Dest + " = " + i.Arg1
	}
	return fmt.Sprintf("%s = %s %s %s", i.Dest, i.Arg1, i.Op, i.Arg2)
}

// Generator owns a temporary counter and an instruction log. Both only reset
// with a new Generator.
type Generator struct {
	temps int
	code  []Instr
}

func New() *Generator {
	return &Generator{}
}

// NewTemp allocates the next temporary name.
func (g *Generator) NewTemp() string {
	g.temps++
	return TempPrefix + strconv.Itoa(g.temps)
}

// Emit appends an instruction to the log.
func (g *Generator) Emit(in Instr) Instr {
	g.code = append(g.code, in)
	return in
}

// Code returns a copy of the instruction log.
func (g *Generator) Code() []Instr {
	out := make([]Instr, len(g.code))
	copy(out, g.code)
	return out
}

// Generate emits the code computing e. It returns the place holding the result
// and the instructions emitted by this call.
func (g *Generator) Generate(e ast.Expr) (string, []Instr, error) {
	start := len(g.code)
	place, err := g.gen(e)
	if err != nil {
		return "", nil, err
	}
	emitted := make([]Instr, len(g.code)-start)
	copy(emitted, g.code[start:])
	return place, emitted, nil
}

// Assign lowers one statement: its expression, then the store into the variable.
func (g *Generator) Assign(a *ast.Assign) error {
	place, _, err := g.Generate(a.Expr)
	if err != nil {
		return fmt.Errorf("assign %q: %w", a.ID, err)
	}
	g.Emit(Instr{Dest: a.ID, Arg1: place})
	return nil
}

// Program lowers every statement in order.
func (g *Generator) Program(prog *ast.Program) error {
	for _, stmt := range prog.Stmts {
		if err := g.Assign(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) gen(e ast.Expr) (string, error) {
	switch e := e.(type) {
	case *ast.Const:
		t := g.NewTemp()
		g.Emit(Instr{Dest: t, Arg1: e.Value.String()})
		return t, nil
	case *ast.ID:
		return e.Name, nil
	case *ast.BinOp:
		return g.genBinOp(e)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

func (g *Generator) genBinOp(b *ast.BinOp) (string, error) {
	// Two literal operands collapse into one instruction. The check is on the
	// operand nodes themselves, so deeper constant chains are not collapsed.
	l, lok := b.Left.(*ast.Const)
	r, rok := b.Right.(*ast.Const)
	if lok && rok {
		v, err := b.Op.Apply(l.Value, r.Value)
		if err != nil {
			return "", fmt.Errorf("fold %s %s %s: %w", l.Value, b.Op, r.Value, err)
		}
		t := g.NewTemp()
		g.Emit(Instr{Dest: t, Arg1: v.String()})
		return t, nil
	}

	if _, ok := knownOps[b.Op]; !ok {
		return "", &ast.UnknownOperatorError{Op: b.Op}
	}

	left, err := g.operand(b.Left)
	if err != nil {
		return "", err
	}
	right, err := g.operand(b.Right)
	if err != nil {
		return "", err
	}
	t := g.NewTemp()
	g.Emit(Instr{Dest: t, Arg1: left, Op: b.Op, Arg2: right})
	return t, nil
}

// operand returns the place of an operand. Literals are used in place.
func (g *Generator) operand(e ast.Expr) (string, error) {
	if c, ok := e.(*ast.Const); ok {
		return c.Value.String(), nil
	}
	return g.gen(e)
}

var knownOps = map[ast.Op]struct{}{
	ast.OpAdd: {},
	ast.OpSub: {},
	ast.OpMul: {},
	ast.OpDiv: {},
}
