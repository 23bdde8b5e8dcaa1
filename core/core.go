// Package core has core logic for normalizing, evaluating and ranking
// vegetation-index change assessments.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/internal/outwriter"
	"github.com/huangsam/vegwatch/schema"
)

// OptionsFromConfig maps the validated CLI configuration onto evaluator options.
func OptionsFromConfig(cfg *contract.Config) Options {
	return Options{
		Statistic:   cfg.Statistic,
		Threshold:   cfg.Threshold,
		ScaleFactor: cfg.ScaleFactor,
		Alpha:       cfg.Alpha,
	}
}

// GetEvaluateResult runs a single-series evaluation and returns the assessment.
// Both the CLI entry point and the MCP handlers share this path.
func GetEvaluateResult(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ChangeAssessment, error) {
	start := time.Now()
	source := contract.NewFileSource("")
	if err := source.Ready(ctx); err != nil {
		return schema.ChangeAssessment{}, err
	}

	raw, err := source.Fetch(ctx, cfg.SamplesPath)
	if err != nil {
		return schema.ChangeAssessment{}, err
	}

	opts := OptionsFromConfig(cfg)
	opts.AOI = cfg.SamplesPath
	assessment, err := Evaluate(raw, opts)
	if err != nil {
		return schema.ChangeAssessment{}, err
	}

	recordRun(cfg, mgr, start, []schema.ChangeAssessment{assessment})
	return assessment, nil
}

// GetBatchResult evaluates many AOI series concurrently and returns them
// ranked by confidence, truncated to the configured result limit.
func GetBatchResult(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.BatchResult, error) {
	start := time.Now()
	source := contract.NewFileSource("")
	if err := source.Ready(ctx); err != nil {
		return schema.BatchResult{}, err
	}

	items, err := contract.LoadBatchItems(cfg.SamplesPath)
	if err != nil {
		return schema.BatchResult{}, err
	}

	result := evaluateBatch(ctx, items, source, OptionsFromConfig(cfg), cfg.Workers)
	if result.Failed == len(result.Entries) {
		return schema.BatchResult{}, fmt.Errorf("all %d series failed to evaluate", result.Failed)
	}

	assessments := make([]schema.ChangeAssessment, 0, len(result.Entries))
	for _, entry := range result.Entries {
		if entry.Assessment != nil {
			assessments = append(assessments, *entry.Assessment)
		}
	}
	recordRun(cfg, mgr, start, assessments)

	if cfg.ResultLimit > 0 && len(result.Entries) > cfg.ResultLimit {
		result.Entries = result.Entries[:cfg.ResultLimit]
	}

	return result, nil
}

// ExecuteEvaluate runs a single-series evaluation and prints the assessment.
// It serves as the main entry point for the 'evaluate' mode.
func ExecuteEvaluate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	assessment, err := GetEvaluateResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.PrintAssessment(assessment, cfg, duration)
}

// ExecuteBatch evaluates many AOI series concurrently and prints them ranked
// by confidence. It serves as the main entry point for the 'batch' mode.
func ExecuteBatch(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetBatchResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.PrintBatchResults(result, cfg, duration)
}

// GetSeriesResult normalizes a single series and returns the audit view.
func GetSeriesResult(ctx context.Context, cfg *contract.Config) (*schema.Series, error) {
	source := contract.NewFileSource("")
	if err := source.Ready(ctx); err != nil {
		return nil, err
	}

	raw, err := source.Fetch(ctx, cfg.SamplesPath)
	if err != nil {
		return nil, err
	}

	return Normalize(raw)
}

// ExecuteSeries normalizes a single series and prints the audit view:
// the clean chronological samples plus the normalization diagnostics.
func ExecuteSeries(ctx context.Context, cfg *contract.Config) error {
	series, err := GetSeriesResult(ctx, cfg)
	if err != nil {
		return err
	}

	return outwriter.PrintSeries(series, cfg)
}

// ExecuteStatistics displays the formal definitions of all statistic modes.
// This is a static display that does not require any sample data.
func ExecuteStatistics(cfg *contract.Config) error {
	return outwriter.PrintStatisticDefinitions(cfg)
}

// recordRun persists a completed evaluation when a store is configured.
// Tracking failures degrade to warnings; they never fail the evaluation.
func recordRun(cfg *contract.Config, mgr contract.StoreManager, start time.Time, assessments []schema.ChangeAssessment) {
	if mgr == nil {
		return
	}
	store := mgr.GetAssessmentStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, cfg.Params())
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return
	}
	if runID <= 0 {
		return
	}

	for _, assessment := range assessments {
		if err := store.RecordAssessment(runID, assessment); err != nil {
			contract.LogWarn("Failed to record assessment", err)
		}
	}
	if err := store.EndRun(runID, time.Now(), len(assessments)); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}
