package ir

import (
	"fmt"
	"strings"
)

// Function is a named sequence of basic blocks, or a bodiless declaration
// when Blocks is empty.
type Function struct {
	Name        string
	Parameters  []*Value
	ReturnType  string
	Blocks      []*BasicBlock
	Entry       *BasicBlock
	CallingConv string
	Linkage     string
	Visibility  string
	Attributes  []string

	nextValueID int
}

// NewFunction creates a function with a single empty entry block.
func NewFunction(name string, params []*Value, returnType string) *Function {
	entry := NewBasicBlock("entry")
	return &Function{
		Name:        name,
		Parameters:  params,
		ReturnType:  returnType,
		Blocks:      []*BasicBlock{entry},
		Entry:       entry,
		nextValueID: len(params),
	}
}

// NewDeclaration creates a bodiless function (no blocks, no entry).
func NewDeclaration(name string, params []*Value, returnType string) *Function {
	return &Function{Name: name, Parameters: params, ReturnType: returnType}
}

// IsDeclaration reports whether the function has no body.
func (f *Function) IsDeclaration() bool { return len(f.Blocks) == 0 }

// NewBasicBlockInFunc creates a new block, appends it, and assigns its
// positional index.
func (f *Function) NewBasicBlockInFunc(label string) *BasicBlock {
	bb := NewBasicBlock(label)
	bb.Index = len(f.Blocks)
	f.Blocks = append(f.Blocks, bb)
	return bb
}

// NewValue creates a value with a fresh unique ID scoped to this function.
func (f *Function) NewValue(name string, typ string, kind ValueKind) *Value {
	v := &Value{ID: f.nextValueID, Name: name, Type: typ, Kind: kind}
	f.nextValueID++
	return v
}

// NewTemp creates a fresh compiler temporary.
func (f *Function) NewTemp(typ string) *Value {
	return f.NewValue("", typ, ValueTemporary)
}

// Signature is the printed function-type string used for signature-change
// detection: "name : (paramTypes) -> retType".
func (f *Function) Signature() string {
	types := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		types[i] = p.Type
	}
	return fmt.Sprintf("%s : (%s) -> %s", f.Name, strings.Join(types, ", "), f.ReturnType)
}

// AttributeString is the printed attribute list used for attribute-equality
// comparison: calling convention, linkage, visibility, and any explicit
// attributes, in that order.
func (f *Function) AttributeString() string {
	parts := []string{f.CallingConv, f.Linkage, f.Visibility}
	parts = append(parts, f.Attributes...)
	return strings.Join(parts, " ")
}

func (f *Function) String() string {
	var sb strings.Builder
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = fmt.Sprintf("%s: %s", p, p.Type)
	}
	if f.IsDeclaration() {
		fmt.Fprintf(&sb, "declare %s(%s) %s\n", f.Name, strings.Join(params, ", "), f.ReturnType)
		return sb.String()
	}
	fmt.Fprintf(&sb, "func %s(%s) %s {\n", f.Name, strings.Join(params, ", "), f.ReturnType)
	for _, block := range f.Blocks {
		sb.WriteString(block.String())
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Clone produces a deep, independent copy of the function: fresh Value and
// BasicBlock objects, with every pointer inside instructions retargeted to
// the copies. The two clones never share mutable state, matching the
// "before and after modules are never mixed into the same context"
// invariant at the function level.
func (f *Function) Clone() *Function {
	nf := &Function{
		Name:        f.Name,
		ReturnType:  f.ReturnType,
		CallingConv: f.CallingConv,
		Linkage:     f.Linkage,
		Visibility:  f.Visibility,
		Attributes:  append([]string(nil), f.Attributes...),
		nextValueID: f.nextValueID,
	}

	valueMap := make(map[*Value]*Value)
	cloneValue := func(v *Value) *Value {
		if v == nil {
			return nil
		}
		if cv, ok := valueMap[v]; ok {
			return cv
		}
		cv := &Value{ID: v.ID, Name: v.Name, Type: v.Type, Kind: v.Kind, Constant: v.Constant}
		valueMap[v] = cv
		return cv
	}

	for _, p := range f.Parameters {
		nf.Parameters = append(nf.Parameters, cloneValue(p))
	}

	blockMap := make(map[*BasicBlock]*BasicBlock)
	for _, b := range f.Blocks {
		nb := &BasicBlock{Label: b.Label, Index: b.Index}
		blockMap[b] = nb
		nf.Blocks = append(nf.Blocks, nb)
	}
	if f.Entry != nil {
		nf.Entry = blockMap[f.Entry]
	}

	for _, b := range f.Blocks {
		nb := blockMap[b]
		for _, s := range b.Successors {
			nb.Successors = append(nb.Successors, blockMap[s])
		}
		for _, p := range b.Predecessors {
			nb.Predecessors = append(nb.Predecessors, blockMap[p])
		}
		for _, instr := range b.Instructions {
			nb.Instructions = append(nb.Instructions, cloneInstruction(instr, cloneValue, blockMap))
		}
	}

	return nf
}

func cloneInstruction(instr Instruction, cv func(*Value) *Value, bm map[*BasicBlock]*BasicBlock) Instruction {
	switch i := instr.(type) {
	case *BinaryOp:
		return &BinaryOp{loc: i.loc, Op: i.Op, Dest: cv(i.Dest), Left: cv(i.Left), Right: cv(i.Right)}
	case *Copy:
		return &Copy{loc: i.loc, Dest: cv(i.Dest), Value: cv(i.Value)}
	case *Load:
		return &Load{loc: i.loc, Dest: cv(i.Dest), Address: cv(i.Address)}
	case *Store:
		return &Store{loc: i.loc, Address: cv(i.Address), Value: cv(i.Value)}
	case *Alloca:
		return &Alloca{loc: i.loc, Dest: cv(i.Dest), Type: i.Type}
	case *Call:
		args := make([]*Value, len(i.Args))
		for j, a := range i.Args {
			args[j] = cv(a)
		}
		return &Call{loc: i.loc, Dest: cv(i.Dest), Callee: i.Callee, Args: args}
	case *Jump:
		return &Jump{loc: i.loc, Target: bm[i.Target]}
	case *Branch:
		return &Branch{loc: i.loc, Condition: cv(i.Condition), TrueBlock: bm[i.TrueBlock], FalseBlock: bm[i.FalseBlock]}
	case *Return:
		return &Return{loc: i.loc, Value: cv(i.Value)}
	case *Phi:
		incoming := make([]PhiIncoming, len(i.Incoming))
		for j, in := range i.Incoming {
			incoming[j] = PhiIncoming{Value: cv(in.Value), Block: bm[in.Block]}
		}
		return &Phi{loc: i.loc, Dest: cv(i.Dest), Incoming: incoming}
	default:
		return instr
	}
}
