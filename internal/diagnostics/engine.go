package diagnostics

import (
	"sort"
	"strings"

	"github.com/Serosh-commits/Aion/internal/diff"
	"github.com/Serosh-commits/Aion/internal/support"
)

// Engine owns an immutable rule database built at construction time and may
// be shared across goroutines freely once New returns.
type Engine struct {
	patterns []OptimizationPattern
}

// New builds an engine with the full default rule database.
func New() *Engine {
	return &Engine{patterns: defaultPatterns()}
}

// Analyze converts every non-Applied remark into a DiagnosticResult, joins
// it to the matching function's structural diff, and stably sorts the
// result by ascending severity.
func (e *Engine) Analyze(remarks []support.Remark, moduleDiff diff.ModuleDiff) []DiagnosticResult {
	diffByFunction := make(map[string]*diff.FunctionDiff, len(moduleDiff.Functions))
	for i := range moduleDiff.Functions {
		fd := &moduleDiff.Functions[i]
		diffByFunction[fd.FunctionName] = fd
	}

	results := make([]DiagnosticResult, 0, len(remarks))
	for _, r := range remarks {
		if r.Kind == support.Applied {
			continue
		}
		dr := e.AnalyzeRemark(r)
		if fd, ok := diffByFunction[r.FunctionName]; ok {
			dr.IRDiff = fd
		}
		results = append(results, dr)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Severity < results[j].Severity
	})

	return results
}

// AnalyzeRemark classifies a single remark against the rule database,
// falling back to a generic diagnostic if nothing matches.
func (e *Engine) AnalyzeRemark(r support.Remark) DiagnosticResult {
	if p := e.findMatchingPattern(r); p != nil {
		return buildFromPattern(r, *p)
	}
	return buildFallback(r)
}

// findMatchingPattern scans the database in registration order. A pattern
// is a candidate only if every one of its non-empty selectors matches the
// remark case-insensitively; the candidate with the highest summed weight
// (pass=2, remark=3, message=4) wins, first registration wins ties.
func (e *Engine) findMatchingPattern(r support.Remark) *OptimizationPattern {
	var best *OptimizationPattern
	bestScore := -1

	for i := range e.patterns {
		p := &e.patterns[i]
		score := 0

		if p.PassNameSubstr != "" {
			if !matchesSubstr(r.PassName, p.PassNameSubstr) {
				continue
			}
			score += 2
		}

		if p.RemarkNameSubstr != "" {
			if !matchesSubstr(r.RemarkName, p.RemarkNameSubstr) {
				continue
			}
			score += 3
		}

		if p.MessageSubstr != "" {
			if !matchesSubstr(r.Message, p.MessageSubstr) {
				continue
			}
			score += 4
		}

		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	return best
}

func matchesSubstr(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// interpolateArgs replaces every "{ArgKey}" placeholder with the matching
// remark argument value (first match wins on duplicate keys), plus the
// reserved "{FunctionName}" placeholder. Placeholders with no match are
// left literal.
func interpolateArgs(tmpl string, r support.Remark) string {
	result := tmpl
	seen := make(map[string]bool, len(r.Args))
	for _, arg := range r.Args {
		if seen[arg.Key] {
			continue
		}
		seen[arg.Key] = true
		result = strings.ReplaceAll(result, "{"+arg.Key+"}", arg.Value)
	}
	result = strings.ReplaceAll(result, "{FunctionName}", r.FunctionName)
	return result
}

func buildFromPattern(r support.Remark, p OptimizationPattern) DiagnosticResult {
	return DiagnosticResult{
		PassName:            r.PassName,
		FunctionName:        r.FunctionName,
		Location:            r.Loc,
		ShortReason:         p.ShortReason,
		DetailedExplanation: interpolateArgs(p.DetailedExplanation, r),
		RootCause:           interpolateArgs(p.RootCause, r),
		OptimizerIntent:     interpolateArgs(p.OptimizerIntent, r),
		Suggestions:         p.Suggestions,
		Severity:            p.Severity,
		EstimatedSpeedup:    p.EstimatedSpeedup,
		IsMachine:           r.IsMachine,
	}
}

func buildFallback(r support.Remark) DiagnosticResult {
	return DiagnosticResult{
		PassName:     r.PassName,
		FunctionName: r.FunctionName,
		Location:     r.Loc,
		ShortReason:  "Optimization missed: " + r.RemarkName,
		DetailedExplanation: "Pass '" + r.PassName + "' reported a missed optimization with " +
			"remark '" + r.RemarkName + "'. The raw message from the pass is: " + r.Message +
			"\n\nThis remark does not have a detailed explanation in the rule database yet. " +
			"The raw remark information above should point you toward the issue.",
		RootCause:        "See raw message: " + r.Message,
		OptimizerIntent:  "The " + r.PassName + " pass attempted a transformation that was blocked by a precondition.",
		Severity:         Medium,
		EstimatedSpeedup: 0.0,
		IsMachine:        r.IsMachine,
	}
}
