package passpipeline

import (
	"fmt"

	"github.com/Serosh-commits/Aion/internal/collector"
	"github.com/Serosh-commits/Aion/internal/ir"
	"github.com/Serosh-commits/Aion/internal/support"
)

// AggressiveDCE removes instructions whose result is never used and blocks
// unreachable from the function's entry, iterating to a fixed point since
// removing one dead instruction can make another dead.
type AggressiveDCE struct{}

func (p *AggressiveDCE) Name() string { return "adce" }

func (p *AggressiveDCE) Run(fn *ir.Function, sink *collector.Collector) error {
	for {
		removedInstr := p.removeUnusedInstructions(fn, sink)
		removedBlock := p.removeUnreachableBlocks(fn, sink)
		if !removedInstr && !removedBlock {
			break
		}
	}
	return nil
}

func (p *AggressiveDCE) removeUnusedInstructions(fn *ir.Function, sink *collector.Collector) bool {
	used := p.markUsedValues(fn)
	modified := false

	for _, block := range fn.Blocks {
		kept := make([]ir.Instruction, 0, len(block.Instructions))
		for _, instr := range block.Instructions {
			if isCritical(instr) {
				kept = append(kept, instr)
				continue
			}
			result := instr.Result()
			if result != nil && used[result] {
				kept = append(kept, instr)
				continue
			}
			modified = true
			if sink != nil {
				sink.Handle(collector.OptRemark{
					Kind:         support.Applied,
					PassName:     p.Name(),
					RemarkName:   "DeadInstructionRemoved",
					FunctionName: fn.Name,
					RawMessage:   fmt.Sprintf("adce: removed dead instruction %s", instr.String()),
				})
			}
		}
		block.Instructions = kept
	}

	return modified
}

func (p *AggressiveDCE) markUsedValues(fn *ir.Function) map[*ir.Value]bool {
	used := make(map[*ir.Value]bool)
	for _, block := range fn.Blocks {
		for _, instr := range block.Instructions {
			if isCritical(instr) {
				for _, operand := range instr.Operands() {
					p.markValue(operand, used, fn)
				}
			}
		}
	}
	return used
}

func (p *AggressiveDCE) markValue(v *ir.Value, used map[*ir.Value]bool, fn *ir.Function) {
	if v == nil || v.IsConstant() || used[v] {
		return
	}
	used[v] = true

	for _, block := range fn.Blocks {
		for _, instr := range block.Instructions {
			if instr.Result() == v {
				for _, operand := range instr.Operands() {
					p.markValue(operand, used, fn)
				}
				return
			}
		}
	}
}

func isCritical(instr ir.Instruction) bool {
	switch instr.(type) {
	case *ir.Store, *ir.Call, *ir.Return, *ir.Branch, *ir.Jump:
		return true
	default:
		return false
	}
}

func (p *AggressiveDCE) removeUnreachableBlocks(fn *ir.Function, sink *collector.Collector) bool {
	reachable := make(map[*ir.BasicBlock]bool)
	stack := []*ir.BasicBlock{fn.Entry}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[current] {
			continue
		}
		reachable[current] = true
		for _, succ := range current.Successors {
			if !reachable[succ] {
				stack = append(stack, succ)
			}
		}
	}

	kept := make([]*ir.BasicBlock, 0, len(fn.Blocks))
	modified := false
	for _, block := range fn.Blocks {
		if reachable[block] {
			kept = append(kept, block)
			continue
		}
		modified = true
		if sink != nil {
			sink.Handle(collector.OptRemark{
				Kind:         support.Applied,
				PassName:     p.Name(),
				RemarkName:   "UnreachableBlockRemoved",
				FunctionName: fn.Name,
				RawMessage:   fmt.Sprintf("adce: removed unreachable block %s", block.Name()),
			})
		}
	}

	if modified {
		fn.Blocks = kept
		reindex(fn)
	}

	return modified
}
