package schema

// BatchItem names one series to evaluate in a batch run.
type BatchItem struct {
	AOI  string `json:"aoi"`
	Path string `json:"path"`
}

// BatchEntry is the outcome for a single AOI within a batch run. Exactly one
// of Assessment or Err is set; failed AOIs never abort the whole batch.
type BatchEntry struct {
	AOI        string            `json:"aoi"`
	Assessment *ChangeAssessment `json:"assessment,omitempty"`
	Err        string            `json:"error,omitempty"`
}

// BatchResult holds all per-AOI outcomes of a batch run, ranked by
// confidence descending.
type BatchResult struct {
	Entries []BatchEntry `json:"entries"`
	Failed  int          `json:"failed"`
}
