package session

import (
	"strings"
	"testing"

	"github.com/Serosh-commits/Aion/internal/config"
)

const sampleModule = `func f(x: int) int {
entry:
  %1 = x + 1
  %2 = x * 2
  return %1
}`

func TestRunSingleInputProducesSession(t *testing.T) {
	sess, err := RunSingleInput("sample.ir", sampleModule, Options{})
	if err != nil {
		t.Fatalf("RunSingleInput() error: %v", err)
	}

	var zero [16]byte
	if sess.SessionID == zero {
		t.Error("expected a generated (non-zero) session id")
	}
	if sess.PipelineUsed == "" {
		t.Error("expected the default pipeline's description to be recorded")
	}
	if sess.BeforeIR == "" || sess.AfterIR == "" {
		t.Error("expected both before and after IR text to be captured")
	}
	if sess.VerificationFailed {
		t.Error("well-formed input should not fail re-verification")
	}
	if !strings.Contains(sess.PipelineUsed, "adce") {
		t.Errorf("PipelineUsed = %q, want it to mention adce", sess.PipelineUsed)
	}
}

func TestRunSingleInputRejectsMalformedInput(t *testing.T) {
	_, err := RunSingleInput("bad.ir", "func f( int { garbage", Options{})
	if err == nil {
		t.Fatal("expected a parse error for malformed input")
	}
}

func TestRunSingleInputRejectsVerificationFailure(t *testing.T) {
	// A block with no terminator fails Module.Verify.
	src := `func f(x: int) int {
entry:
  %1 = x + 1
}`
	_, err := RunSingleInput("unterminated.ir", src, Options{})
	if err == nil {
		t.Fatal("expected a verify error for an unterminated block")
	}
}

func TestRunSingleInputDisablesProvenanceWhenConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.CollectProvenance = false

	sess, err := RunSingleInput("sample.ir", sampleModule, Options{Config: cfg})
	if err != nil {
		t.Fatalf("RunSingleInput() error: %v", err)
	}
	if sess.Provenance.Hostname != "" || sess.Provenance.CPUModel != "" {
		t.Error("expected an empty provenance snapshot when CollectProvenance is false")
	}
}

func TestRunBeforeAfterProducesDiff(t *testing.T) {
	before := `func f(x: int) int {
entry:
  %1 = x + 1
  %2 = x * 2
  return %1
}`
	after := `func f(x: int) int {
entry:
  %1 = x + 1
  return %1
}`

	sess, err := RunBeforeAfter("before.ir", before, "after.ir", after, "", Options{})
	if err != nil {
		t.Fatalf("RunBeforeAfter() error: %v", err)
	}
	if sess.PipelineUsed != "" {
		t.Errorf("PipelineUsed = %q, want empty (before/after runs no pipeline)", sess.PipelineUsed)
	}
	if !sess.Diff.HasChanges() {
		t.Error("expected the diff between before and after to report changes")
	}
}

func TestRunBeforeAfterRequiresBothInputsToParse(t *testing.T) {
	_, err := RunBeforeAfter("bad.ir", "not valid ir at all {{{", "after.ir", sampleModule, "", Options{})
	if err == nil {
		t.Fatal("expected a parse error when the before module is malformed")
	}
}
