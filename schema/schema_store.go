package schema

import "time"

// RunRecord is one persisted evaluation run.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalSeries   int
	ConfigParams  *string // JSON-encoded evaluation parameters
}

// AssessmentRecord is one persisted per-AOI assessment row.
type AssessmentRecord struct {
	RunID             int64
	AOI               string
	EvaluatedAt       time.Time
	SampleCount       int
	Mean              float64
	FirstSegmentMean  float64
	SecondSegmentMean float64
	RawDelta          float64
	ChangeDetected    bool
	Confidence        float64
	Statistic         string
	RangeStart        string
	RangeEnd          string
}

// StoreStatus reports status information about the assessment store.
type StoreStatus struct {
	Backend    StoreBackend
	Location   string
	TotalRuns  int64
	TableSizes map[string]int64
}
