package contract

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/vegwatch/schema"
)

// FileSource reads per-AOI sample files from the local filesystem. It stands
// in for the upstream acquisition service: whatever produced the files has
// already done the imagery reduction, so every record is a (date, value) pair.
//
// Supported formats, selected by extension:
//   - .csv:  date,value rows; an empty value column marks a null reading.
//     An optional "date,value" header row is skipped.
//   - .json: array of {"date": "YYYY-MM-DD", "value": 0.42 | null} objects.
type FileSource struct {
	basePath string
}

var _ SampleSource = &FileSource{} // Compile-time check

// NewFileSource creates a source rooted at the given base path.
// An empty base path resolves refs relative to the working directory.
func NewFileSource(basePath string) *FileSource {
	return &FileSource{basePath: basePath}
}

// Ready reports whether the source's base path is accessible. This is the
// explicit readiness check callers run before evaluating, instead of relying
// on ambient global initialization flags.
func (s *FileSource) Ready(_ context.Context) error {
	if s.basePath == "" {
		return nil
	}
	if _, err := os.Stat(s.basePath); err != nil {
		return fmt.Errorf("sample source unavailable: %w", err)
	}
	return nil
}

// Fetch reads and parses the sample file for one AOI reference.
func (s *FileSource) Fetch(ctx context.Context, ref string) ([]schema.RawSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := ref
	if s.basePath != "" && !filepath.IsAbs(ref) {
		path = filepath.Join(s.basePath, ref)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVSamples(path)
	case ".json":
		return readJSONSamples(path)
	default:
		return nil, fmt.Errorf("unsupported sample file format %q (expected .csv or .json)", filepath.Ext(path))
	}
}

func readCSVSamples(path string) ([]schema.RawSample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read samples csv %s: %w", path, err)
	}

	samples := make([]schema.RawSample, 0, len(records))
	for i, record := range records {
		date := strings.TrimSpace(record[0])
		value := strings.TrimSpace(record[1])

		// Skip an optional header row
		if i == 0 && strings.EqualFold(date, "date") {
			continue
		}

		sample := schema.RawSample{Date: date}
		if value != "" {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d of %s: invalid value %q: %w", i+1, path, value, err)
			}
			sample.Value = &parsed
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func readJSONSamples(path string) ([]schema.RawSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open samples file: %w", err)
	}

	var samples []schema.RawSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse samples json %s: %w", path, err)
	}
	return samples, nil
}

// LoadBatchItems resolves a batch target into named series references.
// A directory yields one item per .csv/.json file (AOI = file name without
// extension); a .json manifest file yields its explicit [{aoi, path}] items.
func LoadBatchItems(target string) ([]schema.BatchItem, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("batch target: %w", err)
	}

	if !info.IsDir() {
		return loadManifest(target)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("read batch directory: %w", err)
	}

	var items []schema.BatchItem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".csv" && ext != ".json" {
			continue
		}
		items = append(items, schema.BatchItem{
			AOI:  strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Path: filepath.Join(target, entry.Name()),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].AOI < items[j].AOI })

	if len(items) == 0 {
		return nil, fmt.Errorf("no sample files found in %s", target)
	}
	return items, nil
}

func loadManifest(path string) ([]schema.BatchItem, error) {
	if strings.ToLower(filepath.Ext(path)) != ".json" {
		return nil, fmt.Errorf("batch manifest must be a .json file, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open batch manifest: %w", err)
	}

	var items []schema.BatchItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse batch manifest %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("batch manifest %s lists no series", path)
	}

	baseDir := filepath.Dir(path)
	for i := range items {
		if items[i].AOI == "" {
			return nil, fmt.Errorf("batch manifest %s: entry %d has no aoi name", path, i)
		}
		if items[i].Path == "" {
			return nil, fmt.Errorf("batch manifest %s: entry %q has no path", path, items[i].AOI)
		}
		if !filepath.IsAbs(items[i].Path) {
			items[i].Path = filepath.Join(baseDir, items[i].Path)
		}
	}
	return items, nil
}
