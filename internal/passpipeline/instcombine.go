package passpipeline

import (
	"fmt"

	"github.com/Serosh-commits/Aion/internal/collector"
	"github.com/Serosh-commits/Aion/internal/ir"
	"github.com/Serosh-commits/Aion/internal/support"
)

// InstructionCombine folds binary operations whose operands are constant
// (directly, or transitively through a prior fold in the same block) into a
// single Copy of the computed value, propagating the fold forward within
// each block in instruction order.
type InstructionCombine struct{}

func (p *InstructionCombine) Name() string { return "instcombine" }

func (p *InstructionCombine) Run(fn *ir.Function, sink *collector.Collector) error {
	for _, block := range fn.Blocks {
		constants := make(map[*ir.Value]interface{})
		for i, instr := range block.Instructions {
			op, ok := instr.(*ir.BinaryOp)
			if !ok {
				if c, ok := instr.(*ir.Copy); ok && c.Value.IsConstant() {
					constants[c.Dest] = c.Value.Constant
				}
				continue
			}

			folded := p.fold(op, constants)
			if folded == nil {
				continue
			}

			block.Instructions[i] = folded
			constants[op.Dest] = folded.Value.Constant
			if sink != nil {
				sink.Handle(collector.OptRemark{
					Kind:         support.Applied,
					PassName:     p.Name(),
					RemarkName:   "Folded",
					FunctionName: fn.Name,
					RawMessage:   fmt.Sprintf("instcombine: folded to %s", folded.String()),
				})
			}
		}
	}

	return nil
}

func (p *InstructionCombine) fold(op *ir.BinaryOp, constants map[*ir.Value]interface{}) *ir.Copy {
	left, leftOk := constantValue(op.Left, constants)
	right, rightOk := constantValue(op.Right, constants)
	if !leftOk || !rightOk {
		return nil
	}

	leftInt, leftIsInt := left.(int64)
	rightInt, rightIsInt := right.(int64)
	if leftIsInt && rightIsInt {
		return foldIntBinaryOp(op, leftInt, rightInt)
	}

	return nil
}

func constantValue(v *ir.Value, constants map[*ir.Value]interface{}) (interface{}, bool) {
	if v.IsConstant() {
		return v.Constant, true
	}
	c, ok := constants[v]
	return c, ok
}

func foldIntBinaryOp(op *ir.BinaryOp, left, right int64) *ir.Copy {
	boolResult := func(b bool) *ir.Copy {
		return &ir.Copy{Dest: op.Dest, Value: &ir.Value{ID: -1, Type: "bool", Kind: ir.ValueConstant, Constant: b}}
	}
	intResult := func(v int64) *ir.Copy {
		return &ir.Copy{Dest: op.Dest, Value: &ir.Value{ID: -1, Type: "int", Kind: ir.ValueConstant, Constant: v}}
	}

	switch op.Op {
	case ir.OpAdd:
		return intResult(left + right)
	case ir.OpSub:
		return intResult(left - right)
	case ir.OpMul:
		return intResult(left * right)
	case ir.OpDiv:
		if right == 0 {
			return nil
		}
		return intResult(left / right)
	case ir.OpMod:
		if right == 0 {
			return nil
		}
		return intResult(left % right)
	case ir.OpEq:
		return boolResult(left == right)
	case ir.OpNeq:
		return boolResult(left != right)
	case ir.OpLt:
		return boolResult(left < right)
	case ir.OpLe:
		return boolResult(left <= right)
	case ir.OpGt:
		return boolResult(left > right)
	case ir.OpGe:
		return boolResult(left >= right)
	default:
		return nil
	}
}
