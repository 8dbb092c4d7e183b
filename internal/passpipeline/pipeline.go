// Package passpipeline drives a small in-process optimization pipeline over
// an IR module, reporting each transformation decision through a collector
// so the diagnostic classifier can later explain what happened.
package passpipeline

import (
	"github.com/Serosh-commits/Aion/internal/collector"
	"github.com/Serosh-commits/Aion/internal/ir"
)

// Pass is one transformation over a single function. A pass reports its
// decisions to sink as it runs; sink may be nil in contexts where remarks
// aren't needed (e.g., a bare correctness test).
type Pass interface {
	Name() string
	Run(fn *ir.Function, sink *collector.Collector) error
}

// Pipeline runs an ordered set of passes over a module.
type Pipeline interface {
	Run(module *ir.Module, sink *collector.Collector) error
}

// Default is the pipeline the session orchestrator uses unless a caller
// supplies a different pass list: instruction combination, control-flow
// simplification, then aggressive dead code elimination, run once per
// function in that order.
type Default struct {
	Passes []Pass
}

// NewDefault builds the standard three-pass pipeline.
func NewDefault() *Default {
	return &Default{
		Passes: []Pass{
			&InstructionCombine{},
			&SimplifyCFG{},
			&AggressiveDCE{},
		},
	}
}

func (d *Default) Run(module *ir.Module, sink *collector.Collector) error {
	for _, fn := range module.Functions {
		if fn.IsDeclaration() {
			continue
		}
		for _, pass := range d.Passes {
			if err := pass.Run(fn, sink); err != nil {
				return err
			}
		}
	}
	return nil
}
