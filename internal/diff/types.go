// Package diff implements the structural IR differ: functions matched by
// name, then two nested Needleman-Wunsch alignments (blocks by name within
// matched functions, instructions by printed text within matched blocks),
// producing a typed diff tree.
package diff

// Kind classifies one diffed entity.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
	Modified
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Modified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// InstructionRecord is the stable printed form of one IR instruction.
type InstructionRecord struct {
	Text       string
	LineIndex  uint
	OpcodeName string
	DebugLoc   string
}

// InstructionDiff pairs at most one before-record with at most one
// after-record. Exactly one side is populated for Added/Removed; both are
// populated for Unchanged and Modified.
type InstructionDiff struct {
	Kind   Kind
	Before *InstructionRecord
	After  *InstructionRecord
}

// BlockDiff is one basic block's classification, with its identity being
// the block's IR name or a synthetic positional identifier.
type BlockDiff struct {
	Kind             Kind
	BlockName        string
	Instructions     []InstructionDiff
	BeforeInstrCount int
	AfterInstrCount  int
}

// FunctionDiff is one function's classification.
type FunctionDiff struct {
	Kind              Kind
	FunctionName      string
	BeforeSignature   string
	AfterSignature    string
	Blocks            []BlockDiff
	BeforeBlockCount  int
	AfterBlockCount   int
	BeforeInstrCount  int
	AfterInstrCount   int
	AttributesChanged bool
	SignatureChanged  bool
}

// WasOptimized reports whether the function shrank in instruction count.
func (f FunctionDiff) WasOptimized() bool {
	return f.Kind == Modified && f.AfterInstrCount < f.BeforeInstrCount
}

// WasSimplified reports whether the function shrank in block count.
func (f FunctionDiff) WasSimplified() bool {
	return f.Kind == Modified && f.AfterBlockCount < f.BeforeBlockCount
}

// WasInlined reports whether the function disappeared entirely (a strong
// signal, though not proof, that it was inlined into its callers).
func (f FunctionDiff) WasInlined() bool {
	return f.Kind == Removed
}

// ModuleDiff is the full result: every function's classification plus
// module-wide totals.
type ModuleDiff struct {
	Functions               []FunctionDiff
	AddedFunctions          int
	RemovedFunctions        int
	ModifiedFunctions       int
	UnchangedFunctions      int
	TotalBeforeInstructions int
	TotalAfterInstructions  int
}

// HasChanges reports whether anything at all differs between the modules.
func (m ModuleDiff) HasChanges() bool {
	return m.AddedFunctions > 0 || m.RemovedFunctions > 0 || m.ModifiedFunctions > 0
}

// InstructionDelta is the net change in total instruction count.
func (m ModuleDiff) InstructionDelta() int {
	return m.TotalAfterInstructions - m.TotalBeforeInstructions
}
