package diff

import (
	"strings"

	"github.com/Serosh-commits/Aion/internal/ir"
)

// Diff aligns two modules and produces a full ModuleDiff: every function
// classified, every block within matched functions classified, every
// instruction within matched blocks classified.
func Diff(before, after *ir.Module) ModuleDiff {
	afterByName := make(map[string]*ir.Function, len(after.Functions))
	for _, fn := range after.Functions {
		afterByName[fn.Name] = fn
	}
	beforeByName := make(map[string]*ir.Function, len(before.Functions))
	for _, fn := range before.Functions {
		beforeByName[fn.Name] = fn
	}

	var result ModuleDiff

	for _, bfn := range before.Functions {
		afn, ok := afterByName[bfn.Name]
		if !ok {
			fd := removedFunctionDiff(bfn)
			result.Functions = append(result.Functions, fd)
			result.RemovedFunctions++
			result.TotalBeforeInstructions += fd.BeforeInstrCount
			continue
		}

		fd := diffFunctions(bfn, afn)
		result.Functions = append(result.Functions, fd)
		result.TotalBeforeInstructions += fd.BeforeInstrCount
		result.TotalAfterInstructions += fd.AfterInstrCount
		switch fd.Kind {
		case Modified:
			result.ModifiedFunctions++
		default:
			result.UnchangedFunctions++
		}
	}

	for _, afn := range after.Functions {
		if _, ok := beforeByName[afn.Name]; ok {
			continue
		}
		fd := addedFunctionDiff(afn)
		result.Functions = append(result.Functions, fd)
		result.AddedFunctions++
		result.TotalAfterInstructions += fd.AfterInstrCount
	}

	return result
}

func removedFunctionDiff(fn *ir.Function) FunctionDiff {
	blockCount, instrCount := countBlocksInstrs(fn)
	return FunctionDiff{
		Kind:             Removed,
		FunctionName:     fn.Name,
		BeforeSignature:  fn.Signature(),
		BeforeBlockCount: blockCount,
		BeforeInstrCount: instrCount,
	}
}

func addedFunctionDiff(fn *ir.Function) FunctionDiff {
	blockCount, instrCount := countBlocksInstrs(fn)
	return FunctionDiff{
		Kind:            Added,
		FunctionName:    fn.Name,
		AfterSignature:  fn.Signature(),
		AfterBlockCount: blockCount,
		AfterInstrCount: instrCount,
	}
}

func countBlocksInstrs(fn *ir.Function) (blocks, instrs int) {
	blocks = len(fn.Blocks)
	for _, b := range fn.Blocks {
		instrs += len(b.Instructions)
	}
	return blocks, instrs
}

func diffFunctions(before, after *ir.Function) FunctionDiff {
	fd := FunctionDiff{
		FunctionName:    before.Name,
		BeforeSignature: before.Signature(),
		AfterSignature:  after.Signature(),
	}

	beforeDecl, afterDecl := before.IsDeclaration(), after.IsDeclaration()

	switch {
	case beforeDecl && afterDecl:
		fd.Kind = Unchanged
		return fd
	case beforeDecl != afterDecl:
		fd.Kind = Modified
		fd.BeforeBlockCount, fd.BeforeInstrCount = countBlocksInstrs(before)
		fd.AfterBlockCount, fd.AfterInstrCount = countBlocksInstrs(after)
		return fd
	}

	fd.Blocks = diffBlocks(before, after)
	fd.BeforeBlockCount, fd.BeforeInstrCount = countBlocksInstrs(before)
	fd.AfterBlockCount, fd.AfterInstrCount = countBlocksInstrs(after)
	fd.AttributesChanged = before.AttributeString() != after.AttributeString()
	fd.SignatureChanged = fd.BeforeSignature != fd.AfterSignature

	anyBlockChange := false
	for _, bd := range fd.Blocks {
		if bd.Kind != Unchanged {
			anyBlockChange = true
			break
		}
	}

	if anyBlockChange || fd.AttributesChanged || fd.SignatureChanged {
		fd.Kind = Modified
	} else {
		fd.Kind = Unchanged
	}

	return fd
}

func diffBlocks(before, after *ir.Function) []BlockDiff {
	beforeNames := make([]string, len(before.Blocks))
	for i, b := range before.Blocks {
		beforeNames[i] = b.Name()
	}
	afterNames := make([]string, len(after.Blocks))
	for i, b := range after.Blocks {
		afterNames[i] = b.Name()
	}

	pairs := alignSequences(beforeNames, afterNames)

	var diffs []BlockDiff
	for _, p := range pairs {
		switch {
		case p.BeforeIdx >= 0 && p.AfterIdx >= 0:
			bb := before.Blocks[p.BeforeIdx]
			ab := after.Blocks[p.AfterIdx]
			instrDiffs := diffInstructions(bb, ab)
			kind := Unchanged
			for _, id := range instrDiffs {
				if id.Kind != Unchanged {
					kind = Modified
					break
				}
			}
			diffs = append(diffs, BlockDiff{
				Kind:             kind,
				BlockName:        bb.Name(),
				Instructions:     instrDiffs,
				BeforeInstrCount: len(bb.Instructions),
				AfterInstrCount:  len(ab.Instructions),
			})
		case p.BeforeIdx >= 0:
			bb := before.Blocks[p.BeforeIdx]
			diffs = append(diffs, BlockDiff{
				Kind:             Removed,
				BlockName:        bb.Name(),
				BeforeInstrCount: len(bb.Instructions),
			})
		default:
			ab := after.Blocks[p.AfterIdx]
			diffs = append(diffs, BlockDiff{
				Kind:            Added,
				BlockName:       ab.Name(),
				AfterInstrCount: len(ab.Instructions),
			})
		}
	}
	return diffs
}

func diffInstructions(before, after *ir.BasicBlock) []InstructionDiff {
	beforeText := make([]string, len(before.Instructions))
	for i, instr := range before.Instructions {
		beforeText[i] = instructionText(instr)
	}
	afterText := make([]string, len(after.Instructions))
	for i, instr := range after.Instructions {
		afterText[i] = instructionText(instr)
	}

	pairs := alignSequences(beforeText, afterText)

	var diffs []InstructionDiff
	for _, p := range pairs {
		switch {
		case p.BeforeIdx >= 0 && p.AfterIdx >= 0:
			br := recordInstruction(before.Instructions[p.BeforeIdx], uint(p.BeforeIdx+1))
			ar := recordInstruction(after.Instructions[p.AfterIdx], uint(p.AfterIdx+1))
			diffs = append(diffs, InstructionDiff{Kind: Unchanged, Before: &br, After: &ar})
		case p.BeforeIdx >= 0:
			br := recordInstruction(before.Instructions[p.BeforeIdx], uint(p.BeforeIdx+1))
			diffs = append(diffs, InstructionDiff{Kind: Removed, Before: &br})
		default:
			ar := recordInstruction(after.Instructions[p.AfterIdx], uint(p.AfterIdx+1))
			diffs = append(diffs, InstructionDiff{Kind: Added, After: &ar})
		}
	}
	return diffs
}

func instructionText(instr ir.Instruction) string {
	return strings.TrimLeft(instr.String(), " \t")
}

func recordInstruction(instr ir.Instruction, lineIndex uint) InstructionRecord {
	return InstructionRecord{
		Text:       instructionText(instr),
		LineIndex:  lineIndex,
		OpcodeName: instr.Opcode(),
		DebugLoc:   instr.DebugLoc().Format(),
	}
}
