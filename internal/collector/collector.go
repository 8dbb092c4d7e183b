// Package collector implements the live remark collector: a thread-safe
// sink for the structured optimization diagnostics an in-process pass
// pipeline emits while it runs.
package collector

import (
	"strings"
	"sync"

	"github.com/Serosh-commits/Aion/internal/support"
)

// Diagnostic is the capability interface a pass pipeline hands diagnostics
// through. Only one method is required, matching the "small capability
// interface" design used by the original diagnostic handler: claimed
// reports whether the collector accepted the diagnostic.
type Diagnostic interface {
	// Claim converts the diagnostic into a Remark if this collector
	// recognizes its kind, returning ok=false to let it fall through to a
	// default handler otherwise.
	Claim() (remark support.Remark, ok bool)
}

// OptRemark is a live optimization-remark diagnostic as an in-process pass
// manager would emit it, prior to being claimed by the collector.
type OptRemark struct {
	Kind         support.RemarkKind
	PassName     string
	RemarkName   string
	FunctionName string
	Loc          support.SourceLocation
	RawMessage   string // includes the "<prefix>: " header the collector strips
	Args         []support.RemarkArgument
	Hotness      *float64
	IsMachine    bool
}

// Claim always succeeds for an OptRemark: every optimization remark kind is
// recognized.
func (d OptRemark) Claim() (support.Remark, bool) {
	return support.Remark{
		Kind:         d.Kind,
		PassName:     d.PassName,
		RemarkName:   d.RemarkName,
		FunctionName: d.FunctionName,
		Loc:          d.Loc,
		Message:      stripHeader(d.RawMessage),
		Args:         append([]support.RemarkArgument(nil), d.Args...),
		Hotness:      d.Hotness,
		IsMachine:    d.IsMachine,
	}, true
}

// stripHeader removes a leading "<prefix>: " from a printed diagnostic,
// matching the collector's message-construction rule: find the first ':',
// then the first non-space byte after it, and keep the rest.
func stripHeader(s string) string {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return s
	}
	rest := s[idx+1:]
	trimmed := strings.TrimLeft(rest, " ")
	return trimmed
}

// ResourceLimit is a backend resource-limit notice (stack size and the
// like). It is claimed and converted like an optimization remark even
// though it did not originate from the remark machinery.
type ResourceLimit struct {
	ResourceName string
	Size         string
	Limit        string
}

func (d ResourceLimit) Claim() (support.Remark, bool) {
	return support.Remark{
		Kind:       support.Analysis,
		PassName:   "backend",
		RemarkName: d.ResourceName,
		IsMachine:  true,
		Args: []support.RemarkArgument{
			{Key: "Size", Value: d.Size},
			{Key: "Limit", Value: d.Limit},
		},
	}, true
}

// Unclaimed is any diagnostic kind the collector does not recognize; it
// always falls through.
type Unclaimed struct{}

func (Unclaimed) Claim() (support.Remark, bool) { return support.Remark{}, false }

// Collector is a multi-writer/single-reader sink: pass-manager threads may
// call Handle concurrently while the pipeline runs; Snapshot is only safe
// to call once the pipeline has finished.
type Collector struct {
	mu      sync.Mutex
	remarks []support.Remark
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{}
}

// Handle offers a diagnostic to the collector. It returns true iff the
// collector claimed it (appended a remark); an unclaimed diagnostic should
// fall through to whatever default handler the caller has.
func (c *Collector) Handle(d Diagnostic) bool {
	remark, ok := d.Claim()
	if !ok {
		return false
	}
	c.mu.Lock()
	c.remarks = append(c.remarks, remark)
	c.mu.Unlock()
	return true
}

// Snapshot returns an immutable ordered copy of every remark captured so
// far, in emission order.
func (c *Collector) Snapshot() []support.Remark {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]support.Remark, len(c.remarks))
	copy(out, c.remarks)
	return out
}

// Missed returns only remarks of kind Missed.
func (c *Collector) Missed() []support.Remark { return c.filter(func(r support.Remark) bool { return r.Kind == support.Missed }) }

// AppliedRemarks returns only remarks of kind Applied.
func (c *Collector) AppliedRemarks() []support.Remark {
	return c.filter(func(r support.Remark) bool { return r.Kind == support.Applied })
}

// AnalysisRemarks returns remarks of any Analysis-family kind.
func (c *Collector) AnalysisRemarks() []support.Remark {
	return c.filter(func(r support.Remark) bool { return r.IsAnalysis() })
}

// ForFunction returns remarks belonging to the named function.
func (c *Collector) ForFunction(name string) []support.Remark {
	return c.filter(func(r support.Remark) bool { return r.FunctionName == name })
}

// ForPass returns remarks emitted by the named pass.
func (c *Collector) ForPass(name string) []support.Remark {
	return c.filter(func(r support.Remark) bool { return r.PassName == name })
}

func (c *Collector) filter(pred func(support.Remark) bool) []support.Remark {
	snap := c.Snapshot()
	var out []support.Remark
	for _, r := range snap {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
