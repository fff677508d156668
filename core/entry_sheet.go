package core

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Entry sheet layout. The derived columns G:I are formula cells; everything
// from B to F is user input.
const (
	entryHeaderRow = 6
	entryFirstRow  = 7

	colProperty   = "B"
	colFloorplan  = "C"
	colBedrooms   = "D"
	colUnits      = "E"
	colPrelease   = "F"
	colEffective  = "G"
	colTotalBeds  = "H"
	colLeasedBeds = "I"
)

func (g *Generator) entryLastRow() int {
	return entryFirstRow + g.Config.RowCapacity - 1
}

// buildPropertyDataSheet lays out the input grid: five editable columns, a
// bedroom-type droplist, and three derived formula columns per row, plus the
// live highlight for rows falling back to market averages.
func (g *Generator) buildPropertyDataSheet(f ExcelFile, styles *StyleSet, refs *MarketRefs) error {
	sheet := SheetPropertyData
	lastRow := g.entryLastRow()

	if err := f.SetCellValue(sheet, "B2", "Property & Floorplan Data Entry"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B2", "B2", styles.Title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "B2", "G2"); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "B4", "Enter property data below. Leave 'Prelease %' blank to use market averages."); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B4", "B4", styles.Instruction); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "B4", "G4"); err != nil {
		return err
	}

	headers := []struct {
		col   string
		label string
		width float64
	}{
		{colProperty, "Property Name", 25},
		{colFloorplan, "Floorplan Name", 20},
		{colBedrooms, "Bedrooms", 12},
		{colUnits, "Units", 10},
		{colPrelease, "Prelease %", 12},
		{colEffective, "Effective %", 12},
		{colTotalBeds, "Total Beds", 12},
		{colLeasedBeds, "Leased Beds", 12},
	}
	for _, h := range headers {
		cell := fmt.Sprintf("%s%d", h.col, entryHeaderRow)
		if err := f.SetCellValue(sheet, cell, h.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.Header); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, h.col, h.col, h.width); err != nil {
			return err
		}
	}

	for row := entryFirstRow; row <= lastRow; row++ {
		isAlt := row%2 == 1

		// Input cells carry styles only; their values come from the end user.
		inputs := []struct {
			col     string
			styleID int
		}{
			{colProperty, alt(styles.Body, styles.BodyAlt, isAlt)},
			{colFloorplan, alt(styles.Body, styles.BodyAlt, isAlt)},
			{colBedrooms, alt(styles.Center, styles.CenterAlt, isAlt)},
			{colUnits, alt(styles.Center, styles.CenterAlt, isAlt)},
			{colPrelease, alt(styles.Percent, styles.PercentAlt, isAlt)},
		}
		for _, in := range inputs {
			cell := fmt.Sprintf("%s%d", in.col, row)
			if err := f.SetCellStyle(sheet, cell, cell, in.styleID); err != nil {
				return err
			}
		}

		derived := []struct {
			col     string
			formula string
			styleID int
		}{
			{colEffective, effectivePercentFormula(row, refs), alt(styles.Percent, styles.PercentAlt, isAlt)},
			{colTotalBeds, totalBedsFormula(row), alt(styles.Center, styles.CenterAlt, isAlt)},
			{colLeasedBeds, leasedBedsFormula(row), alt(styles.LeasedBold, styles.LeasedBoldAlt, isAlt)},
		}
		for _, d := range derived {
			cell := fmt.Sprintf("%s%d", d.col, row)
			if err := f.SetCellFormula(sheet, cell, d.formula); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, d.styleID); err != nil {
				return err
			}
		}
	}

	// Bedroom column accepts only the closed label set.
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s%d:%s%d", colBedrooms, entryFirstRow, colBedrooms, lastRow)
	if err := dv.SetDropList(BedroomLabels()); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid Entry", "Please select a valid bedroom type")
	dv.SetInput("Bedrooms", "Select bedroom type")
	if err := f.AddDataValidation(sheet, dv); err != nil {
		return err
	}

	// Highlight rows that are using the market average: bedroom type entered,
	// prelease % left blank. Re-evaluates as the user edits.
	flagRange := fmt.Sprintf("%s%d:%s%d", colProperty, entryFirstRow, colLeasedBeds, lastRow)
	criteria := fmt.Sprintf(`AND($%s%d="",$%s%d<>"")`, colPrelease, entryFirstRow, colBedrooms, entryFirstRow)
	if err := f.SetConditionalFormat(sheet, flagRange, []excelize.ConditionalFormatOptions{
		{Type: "formula", Criteria: criteria, Format: &styles.MarketFlag},
	}); err != nil {
		return err
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      entryHeaderRow,
		TopLeftCell: fmt.Sprintf("%s%d", colProperty, entryFirstRow),
		ActivePane:  "bottomRight",
	}); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "A", 3)
}
