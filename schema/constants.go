package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StatisticMode represents the change statistic used by the engine.
	StatisticMode string

	// StoreBackend represents the database backend for run persistence.
	StoreBackend string

	// DedupePolicy represents how duplicate acquisition dates are resolved.
	DedupePolicy string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All statistic modes supported.
const (
	SplitMeanStat StatisticMode = "splitmean" // default
	TTestStat     StatisticMode = "ttest"
	TrendStat     StatisticMode = "trend"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// AveragePolicy folds same-date samples into their arithmetic mean. It is
// the only policy implemented; "keep latest" was considered and rejected in
// favor of a symmetric, order-free rule.
const AveragePolicy DedupePolicy = "average"

// AllStatisticModes returns a list of all supported statistic modes.
var AllStatisticModes = []StatisticMode{SplitMeanStat, TTestStat, TrendStat}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidStatisticModes lists all valid statistic modes.
var ValidStatisticModes = map[StatisticMode]struct{}{
	SplitMeanStat: {},
	TTestStat:     {},
	TrendStat:     {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
