package contract

import (
	"testing"

	"github.com/huangsam/vegwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		SamplesPathStr: "samples.csv",
		Limit:          DefaultResultLimit,
		Workers:        DefaultWorkers,
		Precision:      DefaultPrecision,
		Output:         "text",
		Color:          "yes",
		Statistic:      "splitmean",
		Threshold:      0.1,
		ScaleFactor:    2.0,
		Alpha:          0.05,
		StoreBackend:   "sqlite",
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, "samples.csv", cfg.SamplesPath)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SplitMeanStat, cfg.Statistic)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.True(t, cfg.Color)
}

func TestProcessAndValidate_NormalizesCase(t *testing.T) {
	input := validRawInput()
	input.Statistic = "TTest"
	input.Output = "JSON"
	input.StoreBackend = "PostgreSQL"
	input.StoreDBConnect = "postgres://localhost/vegwatch"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.TTestStat, cfg.Statistic)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.PostgreSQLBackend, cfg.StoreBackend)
}

func TestProcessAndValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		errPart string
	}{
		{"zero limit", func(i *ConfigRawInput) { i.Limit = 0 }, "limit must be greater than 0"},
		{"limit too large", func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }, "cannot exceed"},
		{"zero workers", func(i *ConfigRawInput) { i.Workers = 0 }, "workers must be greater than 0"},
		{"unknown statistic", func(i *ConfigRawInput) { i.Statistic = "wilcoxon" }, "invalid statistic"},
		{"zero threshold", func(i *ConfigRawInput) { i.Threshold = 0 }, "threshold must be greater than 0"},
		{"negative scale factor", func(i *ConfigRawInput) { i.ScaleFactor = -1 }, "scale-factor must be greater than 0"},
		{"alpha too small", func(i *ConfigRawInput) { i.Alpha = 0 }, "alpha must be between 0 and 1"},
		{"alpha too large", func(i *ConfigRawInput) { i.Alpha = 1 }, "alpha must be between 0 and 1"},
		{"precision too low", func(i *ConfigRawInput) { i.Precision = 0 }, "precision must be between 1 and 6"},
		{"precision too high", func(i *ConfigRawInput) { i.Precision = 7 }, "precision must be between 1 and 6"},
		{"unknown output", func(i *ConfigRawInput) { i.Output = "xml" }, "invalid output format"},
		{"bad color", func(i *ConfigRawInput) { i.Color = "maybe" }, "invalid color value"},
		{"unknown backend", func(i *ConfigRawInput) { i.StoreBackend = "oracle" }, "invalid store backend"},
		{"mysql without connection", func(i *ConfigRawInput) { i.StoreBackend = "mysql" }, "store-db-connect is required"},
		{"postgresql without connection", func(i *ConfigRawInput) { i.StoreBackend = "postgresql" }, "store-db-connect is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestValidateStoreConnectionString(t *testing.T) {
	assert.NoError(t, ValidateStoreConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateStoreConnectionString(schema.NoneBackend, ""))
	assert.NoError(t, ValidateStoreConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost)/vegwatch"))
	assert.Error(t, ValidateStoreConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateStoreConnectionString(schema.PostgreSQLBackend, ""))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{SamplesPath: "a.csv", Threshold: 0.1, Statistic: schema.SplitMeanStat}
	clone := cfg.Clone()
	clone.SamplesPath = "b.csv"
	clone.Threshold = 0.5

	assert.Equal(t, "a.csv", cfg.SamplesPath)
	assert.Equal(t, 0.1, cfg.Threshold)
	assert.Equal(t, "b.csv", clone.SamplesPath)
}

func TestConfigParams(t *testing.T) {
	cfg := &Config{
		Statistic:   schema.TrendStat,
		Threshold:   0.2,
		ScaleFactor: 1.0,
		Alpha:       0.01,
		Workers:     8,
	}
	params := cfg.Params()
	assert.Equal(t, "trend", params["statistic"])
	assert.Equal(t, 0.2, params["threshold"])
	assert.Equal(t, 0.01, params["alpha"])
	assert.Equal(t, 8, params["workers"])
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "perf"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "perf", profile.Prefix)
}
