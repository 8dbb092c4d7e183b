package reporter

import (
	"encoding/json"
	"io"
	"time"

	"github.com/Serosh-commits/Aion/internal/diagnostics"
	"github.com/Serosh-commits/Aion/internal/diff"
	"github.com/Serosh-commits/Aion/internal/session"
)

// JSON renders a session as a single indented JSON document: the module
// diff, diagnostics, and provenance a session's consumer needs.
type JSON struct {
	Session *session.AnalysisSession
}

func NewJSON(sess *session.AnalysisSession) *JSON {
	return &JSON{Session: sess}
}

type jsonDocument struct {
	SessionID    string                         `json:"sessionId"`
	Generated    time.Time                      `json:"generated"`
	PipelineUsed string                         `json:"pipelineUsed"`
	Diff         diff.ModuleDiff                `json:"diff"`
	Diagnostics  []diagnostics.DiagnosticResult `json:"diagnostics"`
	Provenance   jsonProvenance                 `json:"provenance"`
}

type jsonProvenance struct {
	CPUModel    string `json:"cpuModel"`
	CPUCores    int    `json:"cpuCores"`
	MemoryTotal uint64 `json:"memoryTotal"`
	Hostname    string `json:"hostname"`
}

// WriteTo renders the full report to w. Generated is not stamped here;
// callers pass the current time in, since this package must stay free of
// wall-clock calls to keep report rendering itself deterministic and
// testable.
func (j *JSON) WriteTo(w io.Writer, generated time.Time) error {
	doc := jsonDocument{
		SessionID:    j.Session.SessionID.String(),
		Generated:    generated,
		PipelineUsed: j.Session.PipelineUsed,
		Diff:         j.Session.Diff,
		Diagnostics:  j.Session.Diagnostics,
		Provenance: jsonProvenance{
			CPUModel:    j.Session.Provenance.CPUModel,
			CPUCores:    j.Session.Provenance.CPUCores,
			MemoryTotal: j.Session.Provenance.MemoryTotal,
			Hostname:    j.Session.Provenance.Hostname,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
