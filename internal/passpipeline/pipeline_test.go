package passpipeline

import (
	"testing"

	"github.com/Serosh-commits/Aion/internal/collector"
	"github.com/Serosh-commits/Aion/internal/ir"
)

func mustParse(t *testing.T, text string) *ir.Module {
	t.Helper()
	mod, err := ir.ParseString("test", text)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return mod
}

func TestAggressiveDCERemovesDeadInstruction(t *testing.T) {
	mod := mustParse(t, `func f(x: int) int {
entry:
  %1 = x + 1
  %2 = x * 2
  return %1
}`)
	fn := mod.Functions[0]
	sink := collector.New()

	pass := &AggressiveDCE{}
	if err := pass.Run(fn, sink); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(fn.Blocks[0].Instructions) != 2 {
		t.Fatalf("expected 2 remaining instructions (dead %%2 removed), got %d", len(fn.Blocks[0].Instructions))
	}

	remarks := sink.Snapshot()
	var sawDeadRemoval bool
	for _, r := range remarks {
		if r.RemarkName == "DeadInstructionRemoved" {
			sawDeadRemoval = true
		}
	}
	if !sawDeadRemoval {
		t.Error("expected a DeadInstructionRemoved remark")
	}
}

func TestAggressiveDCERemovesUnreachableBlock(t *testing.T) {
	mod := mustParse(t, `func f(x: int) int {
entry:
  jump live
live:
  return x
dead:
  return 0
}`)
	fn := mod.Functions[0]
	sink := collector.New()

	pass := &AggressiveDCE{}
	if err := pass.Run(fn, sink); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, b := range fn.Blocks {
		if b.Name() == "dead" {
			t.Fatal("unreachable block 'dead' was not removed")
		}
	}

	remarks := sink.ForPass("adce")
	var sawBlockRemoval bool
	for _, r := range remarks {
		if r.RemarkName == "UnreachableBlockRemoved" {
			sawBlockRemoval = true
		}
	}
	if !sawBlockRemoval {
		t.Error("expected an UnreachableBlockRemoved remark")
	}
}

func TestAggressiveDCEPreservesCriticalInstructions(t *testing.T) {
	mod := mustParse(t, `func f(x: int) int {
entry:
  store x, x
  return x
}`)
	fn := mod.Functions[0]
	pass := &AggressiveDCE{}
	if err := pass.Run(fn, collector.New()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(fn.Blocks[0].Instructions) != 2 {
		t.Errorf("expected both critical instructions preserved, got %d", len(fn.Blocks[0].Instructions))
	}
}

func TestDefaultPipelineSkipsDeclarations(t *testing.T) {
	mod := mustParse(t, `declare extern(x: int) int`)
	pipeline := NewDefault()
	sink := collector.New()

	if err := pipeline.Run(mod, sink); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(sink.Snapshot()) != 0 {
		t.Error("declarations should produce no pass remarks")
	}
}

func TestDefaultPipelineRunsAllPassesInOrder(t *testing.T) {
	pipeline := NewDefault()
	wantNames := []string{"instcombine", "simplifycfg", "adce"}
	if len(pipeline.Passes) != len(wantNames) {
		t.Fatalf("Passes len = %d, want %d", len(pipeline.Passes), len(wantNames))
	}
	for i, name := range wantNames {
		if got := pipeline.Passes[i].Name(); got != name {
			t.Errorf("Passes[%d].Name() = %q, want %q", i, got, name)
		}
	}
}
