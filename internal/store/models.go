// Package store persists AnalysisSession records to Postgres via gorm: one
// parent row per session, with remarks, diagnostics, and a diff summary
// stored as child rows in the same transaction.
package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSON is a generic JSON-backed column for values that don't warrant their
// own relational table (remark arguments, diagnostic suggestions).
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append(JSON(nil), v...)
		return nil
	case string:
		*j = JSON(v)
		return nil
	default:
		return fmt.Errorf("unsupported type for JSON column: %T", value)
	}
}

// SessionRecord is the top-level persisted row for one AnalysisSession.
type SessionRecord struct {
	ID                 string `gorm:"primarykey"`
	BeforeIR           string
	AfterIR            string
	PipelineUsed       string
	VerificationFailed bool
	CPUModel           string
	CPUCores           int32
	MemoryTotal        int64
	Hostname           string
	Remarks            []RemarkRecord      `gorm:"foreignKey:SessionID"`
	Diagnostics        []DiagnosticRecord  `gorm:"foreignKey:SessionID"`
	DiffSummary        DiffSummaryRecord   `gorm:"foreignKey:SessionID"`
	CreatedAt          time.Time
}

// RemarkRecord is one persisted support.Remark.
type RemarkRecord struct {
	SessionID    string `gorm:"primarykey"`
	Seq          int    `gorm:"primarykey"`
	Kind         int
	PassName     string
	RemarkName   string
	FunctionName string
	File         string
	Line         uint
	Column       uint
	Message      string
	Args         JSON
	Hotness      *float64
	IsMachine    bool
}

// DiagnosticRecord is one persisted diagnostics.DiagnosticResult.
type DiagnosticRecord struct {
	SessionID           string `gorm:"primarykey"`
	Seq                 int    `gorm:"primarykey"`
	PassName            string
	FunctionName        string
	Location            string
	ShortReason         string
	DetailedExplanation string
	RootCause           string
	OptimizerIntent     string
	Suggestions         JSON
	Severity            int
	EstimatedSpeedup    float64
	IsMachine           bool
}

// DiffSummaryRecord is the module-wide totals from one ModuleDiff; the
// per-function/per-block/per-instruction detail is not persisted. A stored
// session only needs to reproduce the headline numbers a report lists, not
// the full diff tree.
type DiffSummaryRecord struct {
	SessionID               string `gorm:"primarykey"`
	AddedFunctions          int
	RemovedFunctions        int
	ModifiedFunctions       int
	UnchangedFunctions      int
	TotalBeforeInstructions int
	TotalAfterInstructions  int
}

func marshalJSON(v interface{}) JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return JSON(data)
}
