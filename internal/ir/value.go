// Package ir implements the Go-native intermediate representation the
// diagnostic engine operates on: modules, functions, basic blocks and a
// small instruction set, together with a printer and a parser for the
// engine's own textual form.
//
// There is no LLVM binding available to a pure-Go tool, so this package
// plays the role the spec assigns to "the IR module" opaquely: printable,
// iterable by function/block/instruction, and comparable by attributes and
// signature. The instruction set and block/CFG shape are modeled after a
// classic three-address-code IR.
package ir

import "fmt"

// ValueKind distinguishes how a Value came to exist.
type ValueKind int

const (
	ValueVariable ValueKind = iota
	ValueTemporary
	ValueConstant
	ValueParameter
)

// Value is an operand or result: a variable, a compiler-generated
// temporary, a constant, or a parameter.
type Value struct {
	ID       int
	Name     string
	Type     string
	Kind     ValueKind
	Constant interface{}
}

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case ValueConstant:
		return fmt.Sprintf("%v", v.Constant)
	case ValueParameter:
		if v.Name != "" {
			return fmt.Sprintf("%%%s", v.Name)
		}
		return fmt.Sprintf("%%p%d", v.ID)
	case ValueTemporary:
		return fmt.Sprintf("%%t%d", v.ID)
	default:
		if v.Name != "" {
			return fmt.Sprintf("%%%s", v.Name)
		}
		return fmt.Sprintf("%%v%d", v.ID)
	}
}

// IsConstant reports whether this value is a compile-time constant.
func (v *Value) IsConstant() bool { return v != nil && v.Kind == ValueConstant }
