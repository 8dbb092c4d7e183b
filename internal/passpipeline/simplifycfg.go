package passpipeline

import (
	"fmt"

	"github.com/Serosh-commits/Aion/internal/collector"
	"github.com/Serosh-commits/Aion/internal/ir"
	"github.com/Serosh-commits/Aion/internal/support"
)

// SimplifyCFG merges a block into its sole predecessor when that
// predecessor has exactly this block as its sole successor: the classic
// straight-line merge that removes a redundant unconditional jump.
type SimplifyCFG struct{}

func (p *SimplifyCFG) Name() string { return "simplifycfg" }

func (p *SimplifyCFG) Run(fn *ir.Function, sink *collector.Collector) error {
	merged := true
	for merged {
		merged = false
		for _, block := range fn.Blocks {
			if p.tryMerge(fn, block, sink) {
				merged = true
				break
			}
		}
	}
	reindex(fn)
	return nil
}

// tryMerge merges block into its unique predecessor pred when pred ends in
// an unconditional jump to block and block has no other predecessor.
func (p *SimplifyCFG) tryMerge(fn *ir.Function, block *ir.BasicBlock, sink *collector.Collector) bool {
	if len(block.Predecessors) != 1 || block == fn.Entry {
		return false
	}
	pred := block.Predecessors[0]
	jump, ok := pred.Terminator().(*ir.Jump)
	if !ok || jump.Target != block || len(pred.Successors) != 1 {
		return false
	}

	pred.Instructions = pred.Instructions[:len(pred.Instructions)-1]
	pred.Instructions = append(pred.Instructions, block.Instructions...)
	pred.Successors = block.Successors
	for _, succ := range block.Successors {
		for i, p2 := range succ.Predecessors {
			if p2 == block {
				succ.Predecessors[i] = pred
			}
		}
	}

	removeBlock(fn, block)

	if sink != nil {
		sink.Handle(collector.OptRemark{
			Kind:         support.Applied,
			PassName:     p.Name(),
			RemarkName:   "BlockMerged",
			FunctionName: fn.Name,
			RawMessage:   fmt.Sprintf("simplifycfg: merged %s into %s", block.Name(), pred.Name()),
		})
	}

	return true
}

func removeBlock(fn *ir.Function, target *ir.BasicBlock) {
	kept := fn.Blocks[:0]
	for _, b := range fn.Blocks {
		if b != target {
			kept = append(kept, b)
		}
	}
	fn.Blocks = kept
}

func reindex(fn *ir.Function) {
	for i, b := range fn.Blocks {
		b.Index = i
	}
}
