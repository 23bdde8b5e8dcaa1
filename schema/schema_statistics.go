package schema

// StatisticInfo describes one statistic mode for the static definitions view.
type StatisticInfo struct {
	Name     StatisticMode `json:"name"`
	Purpose  string        `json:"purpose"`
	Decision string        `json:"decision"`
	Score    string        `json:"score"`
	Caveat   string        `json:"caveat"`
}

// StatisticsRenderModel is the render model for the statistics command.
type StatisticsRenderModel struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Statistics  []StatisticInfo `json:"statistics"`
}
