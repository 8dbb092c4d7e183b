package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Serosh-commits/Aion/internal/diagnostics"
	"github.com/Serosh-commits/Aion/internal/diff"
	"github.com/Serosh-commits/Aion/internal/session"
	"github.com/Serosh-commits/Aion/internal/support"
)

// Store wraps a gorm connection and exposes the session persistence
// operations built on top of it.
type Store struct {
	DB *gorm.DB
}

// New wraps an already-opened gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Migrate creates or updates every table this store owns.
func (s *Store) Migrate() error {
	models := []interface{}{
		&SessionRecord{},
		&RemarkRecord{},
		&DiagnosticRecord{},
		&DiffSummaryRecord{},
	}
	for _, m := range models {
		if err := s.DB.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	return nil
}

// Save persists a full AnalysisSession and its child records in one
// transaction: create the parent row, then each child collection.
func (s *Store) Save(sess *session.AnalysisSession) error {
	record := SessionRecord{
		ID:                 sess.SessionID.String(),
		BeforeIR:           sess.BeforeIR,
		AfterIR:            sess.AfterIR,
		PipelineUsed:       sess.PipelineUsed,
		VerificationFailed: sess.VerificationFailed,
		CPUModel:           sess.Provenance.CPUModel,
		CPUCores:           int32(sess.Provenance.CPUCores),
		MemoryTotal:        int64(sess.Provenance.MemoryTotal),
		Hostname:           sess.Provenance.Hostname,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		if remarks := remarkRecords(record.ID, sess.Remarks); len(remarks) > 0 {
			if err := tx.Create(&remarks).Error; err != nil {
				return fmt.Errorf("failed to create remarks: %w", err)
			}
		}

		if diags := diagnosticRecords(record.ID, sess.Diagnostics); len(diags) > 0 {
			if err := tx.Create(&diags).Error; err != nil {
				return fmt.Errorf("failed to create diagnostics: %w", err)
			}
		}

		summary := diffSummaryRecord(record.ID, sess.Diff)
		if err := tx.Create(&summary).Error; err != nil {
			return fmt.Errorf("failed to create diff summary: %w", err)
		}

		return nil
	})
}

// GetByID loads a session record and its children by session ID.
func (s *Store) GetByID(id string) (*SessionRecord, error) {
	var record SessionRecord
	result := s.DB.
		Preload("Remarks").
		Preload("Diagnostics").
		Preload("DiffSummary").
		First(&record, "id = ?", id)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, result.Error)
	}
	return &record, nil
}

// List returns the most recent sessions, newest first, up to pageSize.
func (s *Store) List(pageSize int) ([]SessionRecord, error) {
	var records []SessionRecord
	err := s.DB.
		Order("created_at DESC").
		Preload("DiffSummary").
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return records, nil
}

func remarkRecords(sessionID string, remarks []support.Remark) []RemarkRecord {
	out := make([]RemarkRecord, len(remarks))
	for i, r := range remarks {
		out[i] = RemarkRecord{
			SessionID:    sessionID,
			Seq:          i,
			Kind:         int(r.Kind),
			PassName:     r.PassName,
			RemarkName:   r.RemarkName,
			FunctionName: r.FunctionName,
			File:         r.Loc.File,
			Line:         r.Loc.Line,
			Column:       r.Loc.Column,
			Message:      r.Message,
			Args:         marshalJSON(r.Args),
			Hotness:      r.Hotness,
			IsMachine:    r.IsMachine,
		}
	}
	return out
}

func diagnosticRecords(sessionID string, results []diagnostics.DiagnosticResult) []DiagnosticRecord {
	out := make([]DiagnosticRecord, len(results))
	for i, d := range results {
		out[i] = DiagnosticRecord{
			SessionID:           sessionID,
			Seq:                 i,
			PassName:            d.PassName,
			FunctionName:        d.FunctionName,
			Location:            d.Location.Format(),
			ShortReason:         d.ShortReason,
			DetailedExplanation: d.DetailedExplanation,
			RootCause:           d.RootCause,
			OptimizerIntent:     d.OptimizerIntent,
			Suggestions:         marshalJSON(d.Suggestions),
			Severity:            int(d.Severity),
			EstimatedSpeedup:    d.EstimatedSpeedup,
			IsMachine:           d.IsMachine,
		}
	}
	return out
}

func diffSummaryRecord(sessionID string, md diff.ModuleDiff) DiffSummaryRecord {
	return DiffSummaryRecord{
		SessionID:               sessionID,
		AddedFunctions:          md.AddedFunctions,
		RemovedFunctions:        md.RemovedFunctions,
		ModifiedFunctions:       md.ModifiedFunctions,
		UnchangedFunctions:      md.UnchangedFunctions,
		TotalBeforeInstructions: md.TotalBeforeInstructions,
		TotalAfterInstructions:  md.TotalAfterInstructions,
	}
}
