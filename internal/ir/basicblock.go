package ir

import (
	"fmt"
	"strings"
)

// BasicBlock is a straight-line instruction sequence with one entry and,
// once well-formed, exactly one terminator at its end.
type BasicBlock struct {
	Label        string
	Instructions []Instruction
	Successors   []*BasicBlock
	Predecessors []*BasicBlock
	Index        int
}

// NewBasicBlock creates an empty block with the given label.
func NewBasicBlock(label string) *BasicBlock {
	return &BasicBlock{Label: label}
}

// AddInstruction appends an instruction to the end of the block.
func (bb *BasicBlock) AddInstruction(instr Instruction) {
	bb.Instructions = append(bb.Instructions, instr)
}

// AddSuccessor records succ as reachable from bb and bb as a predecessor of
// succ, deduplicating either direction.
func (bb *BasicBlock) AddSuccessor(succ *BasicBlock) {
	for _, s := range bb.Successors {
		if s == succ {
			return
		}
	}
	bb.Successors = append(bb.Successors, succ)
	succ.Predecessors = append(succ.Predecessors, bb)
}

// Terminator returns the block's terminating instruction, or nil if the
// block is empty or not yet terminated.
func (bb *BasicBlock) Terminator() Instruction {
	if len(bb.Instructions) == 0 {
		return nil
	}
	last := bb.Instructions[len(bb.Instructions)-1]
	if isTerminator(last) {
		return last
	}
	return nil
}

// IsTerminated reports whether the block ends with a terminator.
func (bb *BasicBlock) IsTerminated() bool { return bb.Terminator() != nil }

// Name returns the block's identity for diffing: its own label if set,
// otherwise the synthetic positional identifier.
func (bb *BasicBlock) Name() string {
	if bb.Label != "" {
		return bb.Label
	}
	return fmt.Sprintf("<bb.%d>", bb.Index)
}

func (bb *BasicBlock) String() string {
	var sb strings.Builder
	sb.WriteString(bb.Name())
	sb.WriteString(":\n")
	for _, instr := range bb.Instructions {
		sb.WriteString("  ")
		sb.WriteString(instr.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
