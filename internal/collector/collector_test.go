package collector

import (
	"sync"
	"testing"

	"github.com/Serosh-commits/Aion/internal/support"
)

func TestOptRemarkClaimStripsHeader(t *testing.T) {
	d := OptRemark{
		Kind:         support.Missed,
		PassName:     "inline",
		RemarkName:   "NotInlined",
		FunctionName: "foo",
		RawMessage:   "inline:   'bar' not inlined into 'foo'",
	}

	remark, ok := d.Claim()
	if !ok {
		t.Fatal("Claim() returned ok=false for an OptRemark")
	}
	want := "'bar' not inlined into 'foo'"
	if remark.Message != want {
		t.Errorf("Message = %q, want %q", remark.Message, want)
	}
}

func TestResourceLimitClaim(t *testing.T) {
	d := ResourceLimit{ResourceName: "stack-size", Size: "4096", Limit: "2048"}
	remark, ok := d.Claim()
	if !ok {
		t.Fatal("Claim() returned ok=false for a ResourceLimit")
	}
	if remark.Kind != support.Analysis || !remark.IsMachine {
		t.Errorf("unexpected remark shape: %+v", remark)
	}
	if v, ok := remark.ArgValue("Size"); !ok || v != "4096" {
		t.Errorf("ArgValue(Size) = (%q, %v)", v, ok)
	}
}

func TestUnclaimedNeverClaims(t *testing.T) {
	if _, ok := (Unclaimed{}).Claim(); ok {
		t.Error("Unclaimed.Claim() returned ok=true")
	}
}

func TestCollectorHandleAndSnapshot(t *testing.T) {
	c := New()

	if c.Handle(Unclaimed{}) {
		t.Error("Handle(Unclaimed{}) returned true")
	}

	ok := c.Handle(OptRemark{Kind: support.Applied, PassName: "instcombine", FunctionName: "f", RawMessage: "x: applied"})
	if !ok {
		t.Fatal("Handle(OptRemark) returned false")
	}

	snap := c.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot() len = %d, want 1", len(snap))
	}

	// Snapshot must be a copy: mutating it must not affect the collector.
	snap[0].PassName = "mutated"
	if c.Snapshot()[0].PassName == "mutated" {
		t.Error("Snapshot() leaked internal storage")
	}
}

func TestCollectorFilters(t *testing.T) {
	c := New()
	c.Handle(OptRemark{Kind: support.Applied, PassName: "instcombine", FunctionName: "f", RawMessage: "x:a"})
	c.Handle(OptRemark{Kind: support.Missed, PassName: "inline", FunctionName: "g", RawMessage: "x:b"})
	c.Handle(OptRemark{Kind: support.Analysis, PassName: "inline", FunctionName: "f", RawMessage: "x:c"})

	if got := len(c.Missed()); got != 1 {
		t.Errorf("Missed() len = %d, want 1", got)
	}
	if got := len(c.AppliedRemarks()); got != 1 {
		t.Errorf("AppliedRemarks() len = %d, want 1", got)
	}
	if got := len(c.AnalysisRemarks()); got != 1 {
		t.Errorf("AnalysisRemarks() len = %d, want 1", got)
	}
	if got := len(c.ForFunction("f")); got != 2 {
		t.Errorf("ForFunction(f) len = %d, want 2", got)
	}
	if got := len(c.ForPass("inline")); got != 2 {
		t.Errorf("ForPass(inline) len = %d, want 2", got)
	}
}

func TestCollectorConcurrentHandle(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	const n = 50

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Handle(OptRemark{Kind: support.Applied, PassName: "p", RawMessage: "x:msg"})
		}(i)
	}
	wg.Wait()

	if got := len(c.Snapshot()); got != n {
		t.Errorf("Snapshot() len = %d, want %d", got, n)
	}
}
