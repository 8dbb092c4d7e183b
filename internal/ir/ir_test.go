package ir

import "testing"

func TestParseStringRoundTripsThroughSignature(t *testing.T) {
	mod, err := ParseString("m", `func add(x: int, y: int) int {
entry:
  %1 = x + y
  return %1
}`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}

	fn := mod.FunctionByName("add")
	if fn == nil {
		t.Fatal("FunctionByName(add) returned nil")
	}
	if fn.IsDeclaration() {
		t.Error("IsDeclaration() = true for a function with a body")
	}
	wantSig := "add : (int, int) -> int"
	if got := fn.Signature(); got != wantSig {
		t.Errorf("Signature() = %q, want %q", got, wantSig)
	}
}

func TestParseStringDeclaration(t *testing.T) {
	mod, err := ParseString("m", `declare extfn(x: int) int`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	fn := mod.FunctionByName("extfn")
	if fn == nil || !fn.IsDeclaration() {
		t.Fatal("expected extfn to parse as a declaration")
	}
}

func TestModuleVerifyDetectsMissingTerminator(t *testing.T) {
	mod, err := ParseString("m", `func f(x: int) int {
entry:
  %1 = x + 1
}`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if errs := mod.Verify(); len(errs) == 0 {
		t.Error("Verify() found no errors for an unterminated block")
	}
}

func TestModuleVerifyAcceptsWellFormedModule(t *testing.T) {
	mod, err := ParseString("m", `func f(x: int) int {
entry:
  return x
}`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if errs := mod.Verify(); len(errs) != 0 {
		t.Errorf("Verify() = %v, want no errors", errs)
	}
}

func TestModuleCloneIsIndependent(t *testing.T) {
	mod, err := ParseString("m", `func f(x: int) int {
entry:
  %1 = x + 1
  return %1
}`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}

	clone := mod.Clone()
	clone.Functions[0].Blocks[0].Instructions = clone.Functions[0].Blocks[0].Instructions[:1]

	if len(mod.Functions[0].Blocks[0].Instructions) != 2 {
		t.Error("mutating the clone affected the original module")
	}
}

func TestAssignSyntheticBlockNamesIsStable(t *testing.T) {
	mod, err := ParseString("m", `func f(x: int) int {
entry:
  return x
}`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}

	mod.AssignSyntheticBlockNames()
	before := mod.Functions[0].Blocks[0].Name()

	mod.AssignSyntheticBlockNames()
	after := mod.Functions[0].Blocks[0].Name()

	if before != after {
		t.Errorf("block name changed across repeated calls: %q vs %q", before, after)
	}
	if before != "entry" {
		t.Errorf("Name() = %q, want the explicit label 'entry' to be preserved", before)
	}
}
