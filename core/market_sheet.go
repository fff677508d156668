package core

import (
	"fmt"
	"log/slog"
)

const (
	marketHeaderRow = 6
	marketFirstRow  = 7
	marketLabelCol  = "B"
	marketValueCol  = "C"
)

// MarketRefs is the coordinate handle returned by the reference sheet builder.
// It is the sole channel through which other builders locate a bedroom type's
// market-average cell; nothing else re-derives those addresses.
type MarketRefs struct {
	cells map[BedroomType]string // absolute coordinate, e.g. "$C$7"
}

// Cell returns the absolute coordinate on the reference sheet.
func (r *MarketRefs) Cell(bt BedroomType) (string, bool) {
	cell, ok := r.cells[bt]
	return cell, ok
}

// Ref returns the sheet-qualified reference usable from any other sheet.
// The builder guarantees every BedroomType has a coordinate.
func (r *MarketRefs) Ref(bt BedroomType) string {
	return fmt.Sprintf("'%s'!%s", SheetMarketAverages, r.cells[bt])
}

// buildMarketAveragesSheet lays out the editable market-average table and
// returns the coordinate mapping for the other builders.
func (g *Generator) buildMarketAveragesSheet(f ExcelFile, styles *StyleSet) (*MarketRefs, error) {
	sheet := SheetMarketAverages

	if err := f.SetCellValue(sheet, "B2", "Market Average Prelease Percentages"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "B2", "B2", styles.Title); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheet, "B2", "C2"); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheet, "B4", "Enter the market average prelease % for each bedroom type below."); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "B4", "B4", styles.Instruction); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheet, "B4", "D4"); err != nil {
		return nil, err
	}

	headers := []struct{ col, label string }{
		{marketLabelCol, "Bedroom Type"},
		{marketValueCol, "Prelease %"},
	}
	for _, h := range headers {
		cell := fmt.Sprintf("%s%d", h.col, marketHeaderRow)
		if err := f.SetCellValue(sheet, cell, h.label); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.Header); err != nil {
			return nil, err
		}
	}

	refs := &MarketRefs{cells: make(map[BedroomType]string, len(BedroomTypes))}
	for i, ma := range g.Config.MarketAverages {
		bt, err := ParseBedroomType(ma.BedroomType)
		if err != nil {
			return nil, fmt.Errorf("market average %d: %w", i, err)
		}
		row := marketFirstRow + i
		isAlt := row%2 == 1

		labelCell := fmt.Sprintf("%s%d", marketLabelCol, row)
		if err := f.SetCellValue(sheet, labelCell, bt.Label()); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, alt(styles.Center, styles.CenterAlt, isAlt)); err != nil {
			return nil, err
		}

		valueCell := fmt.Sprintf("%s%d", marketValueCol, row)
		if err := f.SetCellValue(sheet, valueCell, ma.Percent); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, valueCell, valueCell, alt(styles.Percent, styles.PercentAlt, isAlt)); err != nil {
			return nil, err
		}

		refs.cells[bt] = fmt.Sprintf("$%s$%d", marketValueCol, row)
		slog.Debug("Market average placed", "bedroomType", bt.Label(), "cell", valueCell, "percent", ma.Percent)
	}

	// The formula builders index this map for every enum member.
	for _, bt := range BedroomTypes {
		if _, ok := refs.cells[bt]; !ok {
			return nil, fmt.Errorf("no market average configured for bedroom type '%s'", bt.Label())
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 3); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, marketLabelCol, marketLabelCol, 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, marketValueCol, marketValueCol, 15); err != nil {
		return nil, err
	}

	return refs, nil
}
