package config

import (
	"fmt"
)

// Validator validates the configuration objects.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateWorkbook validates the WorkbookConfig.
func (v *Validator) ValidateWorkbook(wb *WorkbookConfig) error {
	if wb.Name == "" {
		return fmt.Errorf("workbook name is required")
	}
	if wb.RowCapacity < 1 {
		return fmt.Errorf("workbook row capacity must be at least 1, got %d", wb.RowCapacity)
	}
	if len(wb.MarketAverages) == 0 {
		return fmt.Errorf("workbook must define at least one market average")
	}

	seen := make(map[string]struct{}, len(wb.MarketAverages))
	for i := range wb.MarketAverages {
		if err := v.ValidateMarketAverage(&wb.MarketAverages[i]); err != nil {
			return fmt.Errorf("market average %d error: %w", i, err)
		}
		key := wb.MarketAverages[i].BedroomType
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate market average for bedroom type '%s'", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ValidateMarketAverage validates a single MarketAverageConfig.
func (v *Validator) ValidateMarketAverage(ma *MarketAverageConfig) error {
	if ma.BedroomType == "" {
		return fmt.Errorf("bedroom type is required")
	}
	if ma.Percent < 0 || ma.Percent > 1 {
		return fmt.Errorf("percent for '%s' must be within [0,1], got %v", ma.BedroomType, ma.Percent)
	}
	return nil
}
