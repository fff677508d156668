package core

import (
	"fmt"
	"log/slog"
)

// PropertyRow is one property/floorplan entry on the data sheet.
type PropertyRow struct {
	PropertyName    string
	FloorplanName   string
	Bedrooms        BedroomType
	Units           int
	PreleasePercent *float64 // nil leaves the cell blank, falling back to the market average
}

func pct(v float64) *float64 {
	return &v
}

// SampleRows returns the bundled demonstration dataset: three properties
// exercising both the explicit-percentage and market-average-fallback paths.
// Regression tests depend on these exact rows.
func SampleRows() []PropertyRow {
	return []PropertyRow{
		{"The Heights", "Studio Deluxe", Studio, 24, pct(0.52)},
		{"The Heights", "A1", OneBR, 36, pct(0.52)},
		{"The Heights", "B1", TwoBR, 48, pct(0.52)},
		{"The Heights", "B2 Premium", TwoBR, 24, pct(0.52)},
		{"The Heights", "C1", ThreeBR, 32, pct(0.52)},
		{"University Village", "Efficiency", Studio, 20, nil},
		{"University Village", "One Bed", OneBR, 40, nil},
		{"University Village", "Two Bed A", TwoBR, 60, nil},
		{"University Village", "Two Bed B", TwoBR, 30, nil},
		{"University Village", "Three Bed", ThreeBR, 48, nil},
		{"University Village", "Four Bed", FourBR, 24, nil},
		{"Campus Edge", "Studio", Studio, 16, pct(0.48)},
		{"Campus Edge", "1BR Classic", OneBR, 32, pct(0.48)},
		{"Campus Edge", "2BR Standard", TwoBR, 40, pct(0.48)},
		{"Campus Edge", "3BR Townhome", ThreeBR, 20, pct(0.48)},
	}
}

// writeSampleData fills the entry sheet's input columns with the demonstration
// rows. The derived columns stay formulas; only inputs are written.
func (g *Generator) writeSampleData(f ExcelFile) error {
	rows := SampleRows()
	if g.Config.RowCapacity < len(rows) {
		slog.Warn("Row capacity below sample dataset size, truncating",
			"capacity", g.Config.RowCapacity, "rows", len(rows))
		rows = rows[:g.Config.RowCapacity]
	}

	for i, r := range rows {
		row := entryFirstRow + i
		cells := []struct {
			col   string
			value interface{}
		}{
			{colProperty, r.PropertyName},
			{colFloorplan, r.FloorplanName},
			{colBedrooms, r.Bedrooms.Label()},
			{colUnits, r.Units},
		}
		for _, c := range cells {
			if err := f.SetCellValue(SheetPropertyData, fmt.Sprintf("%s%d", c.col, row), c.value); err != nil {
				return err
			}
		}
		if r.PreleasePercent != nil {
			cell := fmt.Sprintf("%s%d", colPrelease, row)
			if err := f.SetCellValue(SheetPropertyData, cell, *r.PreleasePercent); err != nil {
				return err
			}
		}
	}
	return nil
}
