package core

import (
	"context"
	"sort"
	"sync"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
)

// evaluateBatch fetches and evaluates every named series concurrently with a
// bounded worker pool. A failed AOI is recorded as an error entry and never
// aborts the rest of the batch; evaluations share no state, so no
// coordination beyond the pool itself is needed.
func evaluateBatch(ctx context.Context, items []schema.BatchItem, source contract.SampleSource, opts Options, workers int) schema.BatchResult {
	if workers < 1 {
		workers = 1
	}

	itemCh := make(chan schema.BatchItem, len(items))
	entryCh := make(chan schema.BatchEntry, len(items))
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemCh {
				entryCh <- evaluateOne(ctx, item, source, opts)
			}
		}()
	}

	for _, item := range items {
		itemCh <- item
	}
	close(itemCh)
	wg.Wait()
	close(entryCh)

	result := schema.BatchResult{Entries: make([]schema.BatchEntry, 0, len(items))}
	for entry := range entryCh {
		if entry.Err != "" {
			result.Failed++
		}
		result.Entries = append(result.Entries, entry)
	}

	rankEntries(result.Entries)
	return result
}

func evaluateOne(ctx context.Context, item schema.BatchItem, source contract.SampleSource, opts Options) schema.BatchEntry {
	raw, err := source.Fetch(ctx, item.Path)
	if err != nil {
		return schema.BatchEntry{AOI: item.AOI, Err: err.Error()}
	}

	opts.AOI = item.AOI
	assessment, err := Evaluate(raw, opts)
	if err != nil {
		return schema.BatchEntry{AOI: item.AOI, Err: err.Error()}
	}
	return schema.BatchEntry{AOI: item.AOI, Assessment: &assessment}
}

// rankEntries sorts by confidence descending, errors last, AOI name as the
// deterministic tie-break.
func rankEntries(entries []schema.BatchEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Assessment == nil && b.Assessment == nil:
			return a.AOI < b.AOI
		case a.Assessment == nil:
			return false
		case b.Assessment == nil:
			return true
		}
		if a.Assessment.Confidence != b.Assessment.Confidence {
			return a.Assessment.Confidence > b.Assessment.Confidence
		}
		return a.AOI < b.AOI
	})
}
