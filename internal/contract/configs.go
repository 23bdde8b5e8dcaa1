package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/vegwatch/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 1000
	DefaultWorkers     = 4
	DefaultPrecision   = 3
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for an evaluation.
// This struct is the "final, validated" config; raw flag/file/env values are
// parsed into it by ProcessAndValidate.
type Config struct {
	SamplesPath string // Positional argument: samples file, directory, or manifest
	ResultLimit int    // Maximum number of batch entries to show in results
	Workers     int    // Number of concurrent workers for batch evaluation
	Precision   int    // Decimal precision for numeric columns
	Output      schema.OutputMode
	OutputFile  string
	Color       bool
	Width       int // Terminal width override (0 = auto-detect)

	Statistic   schema.StatisticMode
	Threshold   float64
	ScaleFactor float64
	Alpha       float64

	StoreBackend   schema.StoreBackend
	StoreDBConnect string
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SamplesPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit          int     `mapstructure:"limit"`
	Workers        int     `mapstructure:"workers"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Color          string  `mapstructure:"color"`
	Width          int     `mapstructure:"width"`
	Statistic      string  `mapstructure:"statistic"`
	Threshold      float64 `mapstructure:"threshold"`
	ScaleFactor    float64 `mapstructure:"scale-factor"`
	Alpha          float64 `mapstructure:"alpha"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Statistic Validation ---
	cfg.Statistic = schema.StatisticMode(strings.ToLower(input.Statistic))
	if _, ok := schema.ValidStatisticModes[cfg.Statistic]; !ok {
		return fmt.Errorf("invalid statistic '%s'. must be splitmean, ttest, trend", input.Statistic)
	}

	// --- 4. Evaluation Parameter Validation ---
	if input.Threshold <= 0 {
		return fmt.Errorf("threshold must be greater than 0 (received %g)", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	if input.ScaleFactor <= 0 {
		return fmt.Errorf("scale-factor must be greater than 0 (received %g)", input.ScaleFactor)
	}
	cfg.ScaleFactor = input.ScaleFactor

	if input.Alpha <= 0 || input.Alpha >= 1 {
		return fmt.Errorf("alpha must be between 0 and 1 exclusive (received %g)", input.Alpha)
	}
	cfg.Alpha = input.Alpha

	// --- 5. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 1 and 6 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 6. Color Validation ---
	colorEnabled, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.Color = colorEnabled
	cfg.Width = input.Width

	// --- 7. Store Backend Validation ---
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	if (cfg.StoreBackend == schema.MySQLBackend || cfg.StoreBackend == schema.PostgreSQLBackend) && input.StoreDBConnect == "" {
		return fmt.Errorf("store-db-connect is required for the %s backend", cfg.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect

	// --- 8. Samples Path ---
	cfg.SamplesPath = input.SamplesPathStr

	return nil
}

// ValidateStoreConnectionString checks that SQL backends have a connection string.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	if (backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend) && connStr == "" {
		return fmt.Errorf("store-db-connect is required for the %s backend", backend)
	}
	return nil
}

// Clone returns a shallow copy of the config. Handlers that override fields
// per request must clone first so the shared base config stays untouched.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Params returns the evaluation parameters as a flat map for run tracking.
func (c *Config) Params() map[string]any {
	return map[string]any{
		"statistic":    string(c.Statistic),
		"threshold":    c.Threshold,
		"scale_factor": c.ScaleFactor,
		"alpha":        c.Alpha,
		"workers":      c.Workers,
	}
}
