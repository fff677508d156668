package config

// Default returns the built-in workbook configuration. The percentages are the
// market assumptions the workbook ships with; end users adjust them on the
// generated reference sheet, not here.
func Default() *WorkbookConfig {
	return &WorkbookConfig{
		Name:        "MarketSurvey",
		RowCapacity: 100,
		MarketAverages: []MarketAverageConfig{
			{BedroomType: "Studio", Percent: 0.45},
			{BedroomType: "1 BR", Percent: 0.50},
			{BedroomType: "2 BR", Percent: 0.55},
			{BedroomType: "3 BR", Percent: 0.60},
			{BedroomType: "4 BR", Percent: 0.55},
			{BedroomType: "5 BR", Percent: 0.50},
		},
	}
}
