package support

import "testing"

func TestSourceLocationFormat(t *testing.T) {
	tests := []struct {
		name string
		loc  SourceLocation
		want string
	}{
		{"valid", SourceLocation{File: "main.c", Line: 10, Column: 3}, "main.c:10:3"},
		{"invalid empty file", SourceLocation{Line: 10, Column: 3}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if got := tt.loc.IsValid(); got != (tt.want != "") {
				t.Errorf("IsValid() = %v, want %v", got, tt.want != "")
			}
		})
	}
}

func TestRemarkKindPredicates(t *testing.T) {
	tests := []struct {
		name       string
		kind       RemarkKind
		wantMissed bool
		wantApplied bool
		wantAnalysis bool
	}{
		{"applied", Applied, false, true, false},
		{"missed", Missed, true, false, false},
		{"analysis", Analysis, false, false, true},
		{"analysis aliasing", AnalysisAliasing, false, false, true},
		{"analysis fp commute", AnalysisFpCommute, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Remark{Kind: tt.kind}
			if got := r.IsMissed(); got != tt.wantMissed {
				t.Errorf("IsMissed() = %v, want %v", got, tt.wantMissed)
			}
			if got := r.IsApplied(); got != tt.wantApplied {
				t.Errorf("IsApplied() = %v, want %v", got, tt.wantApplied)
			}
			if got := r.IsAnalysis(); got != tt.wantAnalysis {
				t.Errorf("IsAnalysis() = %v, want %v", got, tt.wantAnalysis)
			}
		})
	}
}

func TestRemarkArgValue(t *testing.T) {
	r := Remark{Args: []RemarkArgument{
		{Key: "Cost", Value: "280"},
		{Key: "Threshold", Value: "225"},
	}}

	if v, ok := r.ArgValue("Cost"); !ok || v != "280" {
		t.Errorf("ArgValue(Cost) = (%q, %v), want (280, true)", v, ok)
	}
	if _, ok := r.ArgValue("Missing"); ok {
		t.Error("ArgValue(Missing) claimed found")
	}
}

func TestErrorWrapAndUnwrap(t *testing.T) {
	inner := NewError(IoError, "disk gone")
	wrapped := WrapError(ParseError, "failed to read module", inner)

	if wrapped.Unwrap() != inner {
		t.Error("Unwrap() did not return the wrapped error")
	}
	want := "ParseError: failed to read module: IoError: disk gone"
	if got := wrapped.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ParseError, "ParseError"},
		{VerifyError, "VerifyError"},
		{IoError, "IoError"},
		{ConfigError, "ConfigError"},
		{InternalError, "InternalError"},
		{ErrorKind(99), "UnknownError"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
