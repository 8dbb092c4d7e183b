package diagnostics

import (
	"testing"

	"github.com/Serosh-commits/Aion/internal/diff"
	"github.com/Serosh-commits/Aion/internal/support"
)

func TestAnalyzeSkipsAppliedRemarks(t *testing.T) {
	e := New()
	remarks := []support.Remark{
		{Kind: support.Applied, PassName: "instcombine", FunctionName: "f"},
		{Kind: support.Missed, PassName: "inline", RemarkName: "NotInlined", FunctionName: "f"},
	}

	results := e.Analyze(remarks, diff.ModuleDiff{})
	if len(results) != 1 {
		t.Fatalf("Analyze() returned %d results, want 1 (Applied remarks skipped)", len(results))
	}
}

func TestAnalyzeSortsBySeverityAscending(t *testing.T) {
	e := New()
	remarks := []support.Remark{
		{Kind: support.Missed, PassName: "unknown-pass-xyz", RemarkName: "Whatever", FunctionName: "f"},
		{Kind: support.Missed, PassName: "inline", RemarkName: "NotInlined", Message: "too large to inline", FunctionName: "g"},
	}

	results := e.Analyze(remarks, diff.ModuleDiff{})
	for i := 1; i < len(results); i++ {
		if results[i-1].Severity > results[i].Severity {
			t.Fatalf("results not sorted ascending by severity: %v then %v", results[i-1].Severity, results[i])
		}
	}
}

func TestAnalyzeAttachesFunctionDiff(t *testing.T) {
	e := New()
	fd := diff.FunctionDiff{FunctionName: "f", Kind: diff.Modified}
	moduleDiff := diff.ModuleDiff{Functions: []diff.FunctionDiff{fd}}

	remarks := []support.Remark{
		{Kind: support.Missed, PassName: "inline", RemarkName: "NotInlined", FunctionName: "f"},
	}

	results := e.Analyze(remarks, moduleDiff)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].IRDiff == nil || results[0].IRDiff.FunctionName != "f" {
		t.Error("expected the matching function's diff to be attached")
	}
}

func TestAnalyzeRemarkFallbackForUnknownPattern(t *testing.T) {
	e := New()
	r := support.Remark{
		Kind:         support.Missed,
		PassName:     "totally-unrecognized-pass",
		RemarkName:   "SomeUnknownRemark",
		FunctionName: "f",
		Message:      "raw diagnostic text",
	}

	result := e.AnalyzeRemark(r)
	if result.Severity != Medium {
		t.Errorf("fallback Severity = %v, want Medium", result.Severity)
	}
	if result.HasFix() {
		t.Error("fallback diagnostic should carry no fix suggestions")
	}
}

func TestInterpolateArgsSubstitutesKnownKeysAndFunctionName(t *testing.T) {
	r := support.Remark{
		FunctionName: "hotLoop",
		Args: []support.RemarkArgument{
			{Key: "Cost", Value: "280"},
			{Key: "Threshold", Value: "225"},
		},
	}

	got := interpolateArgs("{FunctionName} exceeded cost {Cost} > threshold {Threshold}, and {Unmatched}", r)
	want := "hotLoop exceeded cost 280 > threshold 225, and {Unmatched}"
	if got != want {
		t.Errorf("interpolateArgs() = %q, want %q", got, want)
	}
}

func TestSeverityLevelOrderingAndRendering(t *testing.T) {
	if !(Critical < High && High < Medium && Medium < Low && Low < Info) {
		t.Error("severity levels are not ordered most-to-least severe")
	}
	tests := map[SeverityLevel]string{
		Critical: "CRITICAL",
		High:     "HIGH",
		Medium:   "MEDIUM",
		Low:      "LOW",
		Info:     "INFO",
	}
	for lvl, want := range tests {
		if got := lvl.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
		if lvl.Emoji() == "" {
			t.Errorf("Emoji() empty for severity %v", lvl)
		}
	}
}
