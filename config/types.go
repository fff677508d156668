package config

// MarketAverageConfig: one bedroom type and its default prelease percentage.
type MarketAverageConfig struct {
	BedroomType string  `json:"bedroomType" yaml:"bedroomType"` // display label, e.g. "2 BR"
	Percent     float64 `json:"percent"     yaml:"percent"`     // fraction in [0,1]
}

// WorkbookConfig: workbook generation settings.
type WorkbookConfig struct {
	// Name is the base file name used when the output path has no extension.
	Name string `json:"name" yaml:"name"`
	// RowCapacity is the number of data-entry rows laid out on the entry sheet.
	RowCapacity int `json:"rowCapacity" yaml:"rowCapacity"`
	// MarketAverages seeds the reference sheet, one entry per bedroom type.
	MarketAverages []MarketAverageConfig `json:"marketAverages" yaml:"marketAverages"`
	// Parameters are substituted into ${...} placeholders in the output path.
	// Values starting with "$date:" are resolved at generation time.
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}
