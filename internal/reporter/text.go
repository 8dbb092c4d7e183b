// Package reporter renders an AnalysisSession for a human or a machine
// consumer. The CLI composition root selects one of these at runtime.
package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/Serosh-commits/Aion/internal/diagnostics"
	"github.com/Serosh-commits/Aion/internal/session"
)

// Text renders a session as a tabwriter-aligned plain-text report, built
// from a sequence of independent section functions.
type Text struct {
	Session *session.AnalysisSession
}

func NewText(sess *session.AnalysisSession) *Text {
	return &Text{Session: sess}
}

// WriteTo renders the full report to w.
func (t *Text) WriteTo(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	sections := []func(*tabwriter.Writer) error{
		t.writeSummary,
		t.writeDiffSummary,
		t.writeDiagnostics,
	}
	for _, section := range sections {
		if err := section(tw); err != nil {
			return err
		}
		fmt.Fprintf(tw, "\n")
	}
	return tw.Flush()
}

func (t *Text) writeSummary(w *tabwriter.Writer) error {
	fmt.Fprintf(w, "Analysis Session\n")
	fmt.Fprintf(w, "================\n\n")
	fmt.Fprintf(w, "Session ID:\t%s\n", t.Session.SessionID)
	fmt.Fprintf(w, "Pipeline:\t%s\n", pipelineOrNone(t.Session.PipelineUsed))
	fmt.Fprintf(w, "Verification Failed:\t%v\n", t.Session.VerificationFailed)
	if t.Session.Provenance.Hostname != "" {
		fmt.Fprintf(w, "Host:\t%s (%s)\n", t.Session.Provenance.Hostname, t.Session.Provenance.CPUModel)
	}
	return nil
}

func pipelineOrNone(p string) string {
	if p == "" {
		return "(none, before/after comparison)"
	}
	return p
}

func (t *Text) writeDiffSummary(w *tabwriter.Writer) error {
	d := t.Session.Diff
	fmt.Fprintf(w, "Module Diff\n")
	fmt.Fprintf(w, "===========\n\n")
	fmt.Fprintf(w, "Added Functions:\t%d\n", d.AddedFunctions)
	fmt.Fprintf(w, "Removed Functions:\t%d\n", d.RemovedFunctions)
	fmt.Fprintf(w, "Modified Functions:\t%d\n", d.ModifiedFunctions)
	fmt.Fprintf(w, "Unchanged Functions:\t%d\n", d.UnchangedFunctions)
	fmt.Fprintf(w, "Instruction Delta:\t%d\n", d.InstructionDelta())
	return nil
}

func (t *Text) writeDiagnostics(w *tabwriter.Writer) error {
	fmt.Fprintf(w, "Diagnostics (%d)\n", len(t.Session.Diagnostics))
	fmt.Fprintf(w, "================\n\n")

	if len(t.Session.Diagnostics) == 0 {
		fmt.Fprintf(w, "(none)\n")
		return nil
	}

	byPass := groupByPass(t.Session.Diagnostics)
	var passes []string
	for pass := range byPass {
		passes = append(passes, pass)
	}
	sort.Strings(passes)

	for _, pass := range passes {
		results := byPass[pass]
		fmt.Fprintf(w, "Pass: %s (%d)\n", pass, len(results))
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(pass)+10))
		for _, d := range results {
			t.writeOne(w, d)
		}
	}
	return nil
}

func (t *Text) writeOne(w *tabwriter.Writer, d diagnostics.DiagnosticResult) {
	fmt.Fprintf(w, "%s %s\n", d.Severity.Emoji(), d.ShortReason)
	fmt.Fprintf(w, "  Function:\t%s\n", d.FunctionName)
	if d.Location.IsValid() {
		fmt.Fprintf(w, "  Location:\t%s\n", d.Location.Format())
	}
	fmt.Fprintf(w, "  Severity:\t%s\n", d.Severity)
	if d.EstimatedSpeedup > 0 {
		fmt.Fprintf(w, "  Estimated Speedup:\t%.2fx\n", d.EstimatedSpeedup)
	}
	fmt.Fprintf(w, "  Root Cause:\t%s\n", d.RootCause)
	for i, s := range d.Suggestions {
		fmt.Fprintf(w, "  Suggestion %d:\t%s\n", i+1, s.Description)
	}
	fmt.Fprintf(w, "\n")
}

func groupByPass(results []diagnostics.DiagnosticResult) map[string][]diagnostics.DiagnosticResult {
	out := make(map[string][]diagnostics.DiagnosticResult)
	for _, d := range results {
		out[d.PassName] = append(out[d.PassName], d)
	}
	return out
}
