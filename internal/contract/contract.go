// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/vegwatch/schema"
)

// SampleSource defines the data-acquisition collaborator the evaluator reads
// from. The upstream concerns (imagery queries, cloud filtering, per-AOI
// reduction) all live behind this interface, so the core logic can be tested
// without any acquisition infrastructure.
type SampleSource interface {
	// Ready reports whether the source can serve samples. Callers must
	// check readiness before evaluating instead of relying on ambient
	// initialization state.
	Ready(ctx context.Context) error

	// Fetch returns the raw sample sequence for one AOI reference.
	Fetch(ctx context.Context, ref string) ([]schema.RawSample, error)
}

// StoreManager defines the interface for managing persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetAssessmentStore() AssessmentStore
}

// AssessmentStore defines the interface for tracking evaluation runs and
// persisting their assessments.
type AssessmentStore interface {
	// BeginRun creates a new evaluation run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalSeries int) error

	// RecordAssessment stores one per-AOI assessment row
	RecordAssessment(runID int64, assessment schema.ChangeAssessment) error

	// GetAllRuns returns all persisted run records
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllAssessments returns all persisted assessment rows
	GetAllAssessments() ([]schema.AssessmentRecord, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection
	Close() error
}
