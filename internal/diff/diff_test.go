package diff

import (
	"testing"

	"github.com/Serosh-commits/Aion/internal/ir"
)

func mustParse(t *testing.T, name, text string) *ir.Module {
	t.Helper()
	mod, err := ir.ParseString(name, text)
	if err != nil {
		t.Fatalf("ParseString(%s) failed: %v", name, err)
	}
	return mod
}

func TestDiffUnchangedFunction(t *testing.T) {
	src := `func f(x: int) int {
entry:
  %1 = x + 1
  return %1
}`
	before := mustParse(t, "before", src)
	after := mustParse(t, "after", src)

	result := Diff(before, after)

	if result.HasChanges() {
		t.Error("HasChanges() = true for two identical modules")
	}
	if result.UnchangedFunctions != 1 || result.ModifiedFunctions != 0 {
		t.Errorf("unexpected counts: unchanged=%d modified=%d", result.UnchangedFunctions, result.ModifiedFunctions)
	}
	if result.InstructionDelta() != 0 {
		t.Errorf("InstructionDelta() = %d, want 0", result.InstructionDelta())
	}
}

func TestDiffModifiedFunction(t *testing.T) {
	before := mustParse(t, "before", `func f(x: int) int {
entry:
  %1 = x + 1
  %2 = %1 * 2
  return %2
}`)
	after := mustParse(t, "after", `func f(x: int) int {
entry:
  %1 = x + 1
  return %1
}`)

	result := Diff(before, after)

	if !result.HasChanges() {
		t.Fatal("HasChanges() = false, want true")
	}
	if result.ModifiedFunctions != 1 {
		t.Fatalf("ModifiedFunctions = %d, want 1", result.ModifiedFunctions)
	}
	fd := result.Functions[0]
	if fd.Kind != Modified {
		t.Errorf("Kind = %v, want Modified", fd.Kind)
	}
	if !fd.WasOptimized() {
		t.Error("WasOptimized() = false, want true (fewer instructions after)")
	}
	if result.InstructionDelta() >= 0 {
		t.Errorf("InstructionDelta() = %d, want negative", result.InstructionDelta())
	}
}

func TestDiffAddedAndRemovedFunctions(t *testing.T) {
	before := mustParse(t, "before", `func removed() int {
entry:
  return 1
}`)
	after := mustParse(t, "after", `func added() int {
entry:
  return 2
}`)

	result := Diff(before, after)

	if result.AddedFunctions != 1 || result.RemovedFunctions != 1 {
		t.Fatalf("added=%d removed=%d, want 1/1", result.AddedFunctions, result.RemovedFunctions)
	}

	var addedKind, removedKind Kind
	for _, fd := range result.Functions {
		switch fd.FunctionName {
		case "added":
			addedKind = fd.Kind
		case "removed":
			removedKind = fd.Kind
			if !fd.WasInlined() {
				t.Error("WasInlined() = false for a removed function")
			}
		}
	}
	if addedKind != Added {
		t.Errorf("added function Kind = %v, want Added", addedKind)
	}
	if removedKind != Removed {
		t.Errorf("removed function Kind = %v, want Removed", removedKind)
	}
}

func TestDiffDeclarationToDefinitionIsModified(t *testing.T) {
	before := mustParse(t, "before", `declare f(x: int) int`)
	after := mustParse(t, "after", `func f(x: int) int {
entry:
  return x
}`)

	result := Diff(before, after)
	if len(result.Functions) != 1 || result.Functions[0].Kind != Modified {
		t.Fatalf("expected one Modified function, got %+v", result.Functions)
	}
}

func TestDiffBlockLevelAlignment(t *testing.T) {
	before := mustParse(t, "before", `func f(x: int) int {
entry:
  branch x, taken, skipped
taken:
  return 1
skipped:
  return 0
}`)
	after := mustParse(t, "after", `func f(x: int) int {
entry:
  jump taken
taken:
  return 1
}`)

	result := Diff(before, after)
	fd := result.Functions[0]

	var sawRemovedBlock bool
	for _, bd := range fd.Blocks {
		if bd.Kind == Removed {
			sawRemovedBlock = true
			if bd.BlockName != "skipped" {
				t.Errorf("removed block name = %q, want skipped", bd.BlockName)
			}
		}
	}
	if !sawRemovedBlock {
		t.Error("expected a Removed block for the dropped 'skipped' label")
	}
}
