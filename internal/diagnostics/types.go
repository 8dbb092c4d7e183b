// Package diagnostics classifies missed-optimization remarks against a
// static rule database, interpolating remark arguments into human-readable
// explanations and attaching the matching function's structural diff.
package diagnostics

import (
	"github.com/Serosh-commits/Aion/internal/diff"
	"github.com/Serosh-commits/Aion/internal/support"
)

// SeverityLevel is ordered; a smaller integer is more severe.
type SeverityLevel int

const (
	Critical SeverityLevel = iota
	High
	Medium
	Low
	Info
)

func (s SeverityLevel) String() string {
	switch s {
	case Critical:
		return "CRITICAL"
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	case Info:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Emoji returns a bracketed ASCII marker for terminal-friendly rendering by
// an external reporter; the core never prints it itself.
func (s SeverityLevel) Emoji() string {
	switch s {
	case Critical:
		return "[!!]"
	case High:
		return "[! ]"
	case Medium:
		return "[~ ]"
	case Low:
		return "[- ]"
	case Info:
		return "[i ]"
	default:
		return "[? ]"
	}
}

// FixSuggestion is one human-readable repair paired with an optional code
// example.
type FixSuggestion struct {
	Description   string
	CodeExample   string
	IsSourceLevel bool
	IsIRLevel     bool
}

// OptimizationPattern is one rule in the classifier's database. The three
// substring selectors may each be empty, meaning "wildcard, don't check".
type OptimizationPattern struct {
	PassNameSubstr      string
	RemarkNameSubstr    string
	MessageSubstr       string
	ShortReason         string
	DetailedExplanation string
	RootCause           string
	OptimizerIntent     string
	Suggestions         []FixSuggestion
	Severity            SeverityLevel
	EstimatedSpeedup    float64
}

// DiagnosticResult is the classifier's output for one remark.
type DiagnosticResult struct {
	PassName            string
	FunctionName        string
	Location            support.SourceLocation
	ShortReason         string
	DetailedExplanation string
	RootCause           string
	OptimizerIntent     string
	Suggestions         []FixSuggestion
	Severity            SeverityLevel
	IRDiff              *diff.FunctionDiff
	EstimatedSpeedup    float64
	IsMachine           bool
}

// HasFix reports whether any suggestion was attached.
func (d DiagnosticResult) HasFix() bool { return len(d.Suggestions) > 0 }

func fix(desc, code string) FixSuggestion {
	return FixSuggestion{Description: desc, CodeExample: code, IsSourceLevel: true}
}

func irFix(desc, code string) FixSuggestion {
	return FixSuggestion{Description: desc, CodeExample: code, IsIRLevel: true}
}
