package ir

import (
	"fmt"
	"strings"

	"github.com/Serosh-commits/Aion/internal/support"
)

// Instruction is one IR operation. Every concrete instruction type
// implements it with five small methods, following the interface-over-
// tagged-union style used throughout this IR.
type Instruction interface {
	String() string
	Operands() []*Value
	Result() *Value
	Opcode() string
	DebugLoc() support.SourceLocation
}

// loc is embedded by instructions that carry an optional debug location.
type loc struct {
	Loc support.SourceLocation
}

func (l loc) DebugLoc() support.SourceLocation { return l.Loc }

type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}

// BinaryOp computes Dest = Left Op Right.
type BinaryOp struct {
	loc
	Op    BinaryOperator
	Dest  *Value
	Left  *Value
	Right *Value
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("%s = %s %s %s", b.Dest, b.Left, b.Op, b.Right)
}
func (b *BinaryOp) Operands() []*Value { return []*Value{b.Left, b.Right} }
func (b *BinaryOp) Result() *Value     { return b.Dest }
func (b *BinaryOp) Opcode() string     { return "binop" }

// Copy computes Dest = Value.
type Copy struct {
	loc
	Dest  *Value
	Value *Value
}

func (c *Copy) String() string        { return fmt.Sprintf("%s = %s", c.Dest, c.Value) }
func (c *Copy) Operands() []*Value    { return []*Value{c.Value} }
func (c *Copy) Result() *Value        { return c.Dest }
func (c *Copy) Opcode() string        { return "copy" }

// Load reads from memory: Dest = load Address.
type Load struct {
	loc
	Dest    *Value
	Address *Value
}

func (l *Load) String() string     { return fmt.Sprintf("%s = load %s", l.Dest, l.Address) }
func (l *Load) Operands() []*Value { return []*Value{l.Address} }
func (l *Load) Result() *Value     { return l.Dest }
func (l *Load) Opcode() string     { return "load" }

// Store writes to memory: store Value, Address.
type Store struct {
	loc
	Address *Value
	Value   *Value
}

func (s *Store) String() string     { return fmt.Sprintf("store %s, %s", s.Value, s.Address) }
func (s *Store) Operands() []*Value { return []*Value{s.Address, s.Value} }
func (s *Store) Result() *Value     { return nil }
func (s *Store) Opcode() string     { return "store" }

// Alloca reserves stack space: Dest = alloca Type.
type Alloca struct {
	loc
	Dest *Value
	Type string
}

func (a *Alloca) String() string     { return fmt.Sprintf("%s = alloca %s", a.Dest, a.Type) }
func (a *Alloca) Operands() []*Value { return nil }
func (a *Alloca) Result() *Value     { return a.Dest }
func (a *Alloca) Opcode() string     { return "alloca" }

// Call invokes Callee with Args, optionally producing Dest.
type Call struct {
	loc
	Dest   *Value
	Callee string
	Args   []*Value
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	joined := strings.Join(args, ", ")
	if c.Dest != nil {
		return fmt.Sprintf("%s = call %s(%s)", c.Dest, c.Callee, joined)
	}
	return fmt.Sprintf("call %s(%s)", c.Callee, joined)
}
func (c *Call) Operands() []*Value { return c.Args }
func (c *Call) Result() *Value     { return c.Dest }
func (c *Call) Opcode() string     { return "call" }

// Jump unconditionally transfers control to Target.
type Jump struct {
	loc
	Target *BasicBlock
}

func (j *Jump) String() string     { return fmt.Sprintf("jump %s", j.Target.Label) }
func (j *Jump) Operands() []*Value { return nil }
func (j *Jump) Result() *Value     { return nil }
func (j *Jump) Opcode() string     { return "jump" }

// Branch conditionally transfers control to TrueBlock or FalseBlock.
type Branch struct {
	loc
	Condition  *Value
	TrueBlock  *BasicBlock
	FalseBlock *BasicBlock
}

func (b *Branch) String() string {
	return fmt.Sprintf("branch %s, %s, %s", b.Condition, b.TrueBlock.Label, b.FalseBlock.Label)
}
func (b *Branch) Operands() []*Value { return []*Value{b.Condition} }
func (b *Branch) Result() *Value     { return nil }
func (b *Branch) Opcode() string     { return "branch" }

// Return exits the function, optionally with Value.
type Return struct {
	loc
	Value *Value
}

func (r *Return) String() string {
	if r.Value != nil {
		return fmt.Sprintf("return %s", r.Value)
	}
	return "return"
}
func (r *Return) Operands() []*Value {
	if r.Value != nil {
		return []*Value{r.Value}
	}
	return nil
}
func (r *Return) Result() *Value { return nil }
func (r *Return) Opcode() string { return "return" }

// PhiIncoming is one predecessor/value pair of a Phi.
type PhiIncoming struct {
	Value *Value
	Block *BasicBlock
}

// Phi selects a value based on which predecessor block executed.
type Phi struct {
	loc
	Dest     *Value
	Incoming []PhiIncoming
}

func (p *Phi) String() string {
	parts := make([]string, len(p.Incoming))
	for i, inc := range p.Incoming {
		parts[i] = fmt.Sprintf("[%s, %s]", inc.Value, inc.Block.Label)
	}
	return fmt.Sprintf("%s = phi %s", p.Dest, strings.Join(parts, ", "))
}
func (p *Phi) Operands() []*Value {
	ops := make([]*Value, len(p.Incoming))
	for i, inc := range p.Incoming {
		ops[i] = inc.Value
	}
	return ops
}
func (p *Phi) Result() *Value { return p.Dest }
func (p *Phi) Opcode() string { return "phi" }

// isTerminator reports whether an instruction ends a basic block.
func isTerminator(i Instruction) bool {
	switch i.(type) {
	case *Jump, *Branch, *Return:
		return true
	default:
		return false
	}
}
