package ir

import (
	"fmt"
	"strings"
)

// Module is a compilation unit: a named collection of functions and
// globals.
type Module struct {
	Name      string
	Functions []*Function
	Globals   []*Value
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddFunction appends fn to the module.
func (m *Module) AddFunction(fn *Function) {
	m.Functions = append(m.Functions, fn)
}

func (m *Module) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; Module: %s\n\n", m.Name)
	if len(m.Globals) > 0 {
		sb.WriteString("; Globals\n")
		for _, g := range m.Globals {
			fmt.Fprintf(&sb, "global %s: %s\n", g, g.Type)
		}
		sb.WriteString("\n")
	}
	for _, fn := range m.Functions {
		sb.WriteString(fn.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Verify checks structural well-formedness: every defined block ends with
// a terminator, and the entry block of every defined function has no
// predecessors.
func (m *Module) Verify() []error {
	var errs []error
	for _, fn := range m.Functions {
		if fn.IsDeclaration() {
			continue
		}
		for _, block := range fn.Blocks {
			if !block.IsTerminated() {
				errs = append(errs, fmt.Errorf("block %s in function %s has no terminator", block.Name(), fn.Name))
			}
		}
		if fn.Entry != nil && len(fn.Entry.Predecessors) > 0 {
			errs = append(errs, fmt.Errorf("entry block of function %s has predecessors", fn.Name))
		}
	}
	return errs
}

// Clone produces a deep, independent copy of the entire module. This is
// what the orchestrator uses to derive the "after" module from a single
// parsed input before running a pass pipeline on the copy.
func (m *Module) Clone() *Module {
	nm := &Module{Name: m.Name}
	for _, g := range m.Globals {
		nm.Globals = append(nm.Globals, &Value{ID: g.ID, Name: g.Name, Type: g.Type, Kind: g.Kind, Constant: g.Constant})
	}
	for _, fn := range m.Functions {
		nm.Functions = append(nm.Functions, fn.Clone())
	}
	return nm
}

// FunctionByName finds a function by exact name, or nil.
func (m *Module) FunctionByName(name string) *Function {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// AssignSyntheticBlockNames gives every block without an explicit label a
// stable, deterministic identity of the form "aion.bb.<index>", so later
// diffs of the same module (e.g. before vs. after a pass pipeline) can
// match blocks up even when the original IR never named them.
func (m *Module) AssignSyntheticBlockNames() {
	for _, fn := range m.Functions {
		for i, block := range fn.Blocks {
			block.Index = i
			if block.Label == "" {
				block.Label = fmt.Sprintf("aion.bb.%d", i)
			}
		}
	}
}
