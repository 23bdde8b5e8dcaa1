package outwriter

import (
	"fmt"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
)

// assessmentCSVHeader is the flat column layout shared by the single and
// batch CSV writers.
var assessmentCSVHeader = []string{
	"aoi",
	"change_detected",
	"confidence",
	"label",
	"mean",
	"first_segment_mean",
	"second_segment_mean",
	"raw_delta",
	"sample_count",
	"start",
	"end",
	"statistic",
	"excluded_samples",
	"duplicates_merged",
}

// assessmentCSVRow flattens one assessment into CSV columns. Labels are
// always plain here; color codes do not belong in machine output.
func assessmentCSVRow(a schema.ChangeAssessment, fmtFloat func(float64) string) []string {
	return []string{
		a.AOI,
		fmt.Sprintf("%t", a.ChangeDetected),
		fmtFloat(a.Confidence),
		contract.GetPlainLabel(a.Confidence),
		fmtFloat(a.Mean),
		fmtFloat(a.FirstSegmentMean),
		fmtFloat(a.SecondSegmentMean),
		fmtFloat(a.RawDelta),
		fmt.Sprintf("%d", a.SampleCount),
		a.DateRange.Start,
		a.DateRange.End,
		string(a.Statistic),
		fmt.Sprintf("%d", a.ExcludedSamples),
		fmt.Sprintf("%d", a.DuplicatesMerged),
	}
}
