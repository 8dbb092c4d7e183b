package recordfile

import (
	"testing"

	"github.com/Serosh-commits/Aion/internal/support"
)

func TestParseStringMissedRecord(t *testing.T) {
	doc := `--- !Missed
Pass:            inline
Name:            NotInlined
DebugLoc:        { File: 'main.c'
                   Line: 12
                   Column: 5
                 }
Function:        hotLoop
Args:
  - Callee:          bar
  - String:           ' will not be inlined into '
  - Caller:          foo
  - String:           ': too costly to inline (cost='
  - Cost:            '280'
  - String:           ', threshold='
  - Threshold:       '225'
  - String:           ')'
...
`
	remarks := ParseString(doc)
	if len(remarks) != 1 {
		t.Fatalf("ParseString() returned %d remarks, want 1", len(remarks))
	}

	r := remarks[0]
	if r.Kind != support.Missed {
		t.Errorf("Kind = %v, want Missed", r.Kind)
	}
	if r.PassName != "inline" {
		t.Errorf("PassName = %q, want inline", r.PassName)
	}
	if r.FunctionName != "hotLoop" {
		t.Errorf("FunctionName = %q, want hotLoop", r.FunctionName)
	}
	if r.Loc.File != "main.c" || r.Loc.Line != 12 || r.Loc.Column != 5 {
		t.Errorf("Loc = %+v, unexpected", r.Loc)
	}
}

func TestParseStringMultipleRecords(t *testing.T) {
	doc := `--- !Passed
Pass:            inline
Name:            Inlined
Function:        caller
Args:
  - Callee:          callee
...
--- !Analysis
Pass:            gvn
Name:            LoadElim
Function:        f
Args:
  - String:           'analysis note'
...
`
	remarks := ParseString(doc)
	if len(remarks) != 2 {
		t.Fatalf("ParseString() returned %d remarks, want 2", len(remarks))
	}
	if remarks[0].Kind != support.Applied {
		t.Errorf("first remark Kind = %v, want Applied", remarks[0].Kind)
	}
	if remarks[1].Kind != support.Analysis {
		t.Errorf("second remark Kind = %v, want Analysis", remarks[1].Kind)
	}
}

func TestParseStringSkipsRecordsWithoutPass(t *testing.T) {
	doc := `--- !Missed
Name:            NotInlined
Function:        f
...
`
	if remarks := ParseString(doc); len(remarks) != 0 {
		t.Errorf("expected 0 remarks for a record missing Pass, got %d", len(remarks))
	}
}

func TestParseStringIgnoresUnrecognizedRecordKind(t *testing.T) {
	doc := `--- !SomethingElse
Pass:            foo
...
`
	if remarks := ParseString(doc); len(remarks) != 0 {
		t.Errorf("expected 0 remarks for an unrecognized record kind, got %d", len(remarks))
	}
}

func TestParseMissingFileReturnsError(t *testing.T) {
	_, err := Parse("/nonexistent/path/to/records.yaml")
	if err == nil {
		t.Fatal("Parse() with a missing file returned no error")
	}
}
