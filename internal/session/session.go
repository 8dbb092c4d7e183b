// Package session orchestrates the two ways an analysis run can be
// assembled: driving a live pass pipeline over a single input module (Flow
// A), or replaying a comparison between two independently parsed modules
// plus an externally supplied remark stream (Flow B).
package session

import (
	"github.com/google/uuid"

	"github.com/Serosh-commits/Aion/internal/collector"
	"github.com/Serosh-commits/Aion/internal/config"
	"github.com/Serosh-commits/Aion/internal/diagnostics"
	"github.com/Serosh-commits/Aion/internal/diff"
	"github.com/Serosh-commits/Aion/internal/ir"
	"github.com/Serosh-commits/Aion/internal/passpipeline"
	"github.com/Serosh-commits/Aion/internal/provenance"
	"github.com/Serosh-commits/Aion/internal/recordfile"
	"github.com/Serosh-commits/Aion/internal/support"
)

// AnalysisSession is the immutable final bundle a run produces.
type AnalysisSession struct {
	SessionID          uuid.UUID
	Provenance         provenance.Snapshot
	BeforeIR           string
	AfterIR            string
	Remarks            []support.Remark
	Diff               diff.ModuleDiff
	Diagnostics        []diagnostics.DiagnosticResult
	PipelineUsed       string
	VerificationFailed bool
}

// Options controls how a session is assembled. Zero value is valid and
// selects the compiled-in defaults.
type Options struct {
	// Config is the engine configuration driving re-verification and
	// provenance capture. Nil selects config.Default().
	Config *config.Config

	// Pipeline overrides the default three-pass pipeline. Nil selects
	// passpipeline.NewDefault().
	Pipeline passpipeline.Pipeline
}

func (o Options) resolve() (*config.Config, passpipeline.Pipeline) {
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}
	pipeline := o.Pipeline
	if pipeline == nil {
		pipeline = passpipeline.NewDefault()
	}
	return cfg, pipeline
}

// RunSingleInput implements Flow A: parse one IR module, run the default (or
// caller-supplied) pass pipeline against a clone of it, and diff the two
// states. moduleName labels the parsed module; text is its printed IR form.
func RunSingleInput(moduleName, text string, opts Options) (*AnalysisSession, error) {
	cfg, pipeline := opts.resolve()

	before, err := ir.ParseString(moduleName, text)
	if err != nil {
		return nil, err
	}
	before.AssignSyntheticBlockNames()

	if errs := before.Verify(); len(errs) > 0 {
		return nil, support.WrapError(support.VerifyError, "input module failed verification", errs[0])
	}

	after := before.Clone()

	sink := collector.New()
	if err := pipeline.Run(after, sink); err != nil {
		return nil, support.WrapError(support.InternalError, "pass pipeline failed", err)
	}

	verificationFailed := false
	if cfg.ReVerifyAfterPipeline {
		if errs := after.Verify(); len(errs) > 0 {
			verificationFailed = true
		}
	}

	remarks := sink.Snapshot()
	moduleDiff := diff.Diff(before, after)
	engine := diagnostics.New()
	results := engine.Analyze(remarks, moduleDiff)

	sess := &AnalysisSession{
		SessionID:          uuid.New(),
		BeforeIR:           before.String(),
		AfterIR:            after.String(),
		Remarks:            remarks,
		Diff:               moduleDiff,
		Diagnostics:        results,
		PipelineUsed:       pipelineDescription(pipeline),
		VerificationFailed: verificationFailed,
	}
	if cfg.CollectProvenance {
		sess.Provenance = provenance.Capture()
	}
	return sess, nil
}

// RunBeforeAfter implements Flow B: parse two independent IR modules and an
// optional record file's remarks, then diff and classify without running
// any pass. recordPath may be empty, meaning no external remarks.
func RunBeforeAfter(beforeName, beforeText, afterName, afterText, recordPath string, opts Options) (*AnalysisSession, error) {
	cfg, _ := opts.resolve()

	before, err := ir.ParseString(beforeName, beforeText)
	if err != nil {
		return nil, err
	}
	before.AssignSyntheticBlockNames()

	after, err := ir.ParseString(afterName, afterText)
	if err != nil {
		return nil, err
	}
	after.AssignSyntheticBlockNames()

	var remarks []support.Remark
	if recordPath != "" {
		remarks, err = recordfile.Parse(recordPath)
		if err != nil {
			return nil, err
		}
	}

	moduleDiff := diff.Diff(before, after)
	engine := diagnostics.New()
	results := engine.Analyze(remarks, moduleDiff)

	sess := &AnalysisSession{
		SessionID:    uuid.New(),
		BeforeIR:     before.String(),
		AfterIR:      after.String(),
		Remarks:      remarks,
		Diff:         moduleDiff,
		Diagnostics:  results,
		PipelineUsed: "",
	}
	if cfg.CollectProvenance {
		sess.Provenance = provenance.Capture()
	}
	return sess, nil
}

func pipelineDescription(p passpipeline.Pipeline) string {
	d, ok := p.(*passpipeline.Default)
	if !ok {
		return "custom"
	}
	names := make([]string, len(d.Passes))
	for i, pass := range d.Passes {
		names[i] = pass.Name()
	}
	desc := ""
	for i, n := range names {
		if i > 0 {
			desc += ","
		}
		desc += n
	}
	return desc
}
