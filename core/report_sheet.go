package core

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Report sheet layout. Every data cell is a formula over the entry sheet; the
// report offsets its rows one above the entry grid (entry row 7 mirrors into
// report row 8).
const (
	reportHeaderRow = 7
	reportFirstRow  = 8

	reportColProperty  = "B"
	reportColFloorplan = "C"
	reportColBedsUnit  = "D"
	reportColTotal     = "E"
	reportColPercent   = "F"
	reportColLeased    = "G"
)

// buildReportSheet lays out the read-only mirror of the entry sheet plus the
// totals section and overall prelease percentage.
func (g *Generator) buildReportSheet(f ExcelFile, styles *StyleSet) error {
	sheet := SheetReport
	lastRow := reportFirstRow + g.Config.RowCapacity - 1

	if err := f.SetCellValue(sheet, "B2", "Leased Beds Summary Report"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B2", "B2", styles.Title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "B2", "F2"); err != nil {
		return err
	}

	// Report date refreshes whenever the workbook recalculates.
	if err := f.SetCellFormula(sheet, "B3", "TODAY()"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B3", "B3", styles.ReportDate); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "B5", "This report auto-updates from Property Data. Copy this table for your reports."); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B5", "B5", styles.Instruction); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "B5", "F5"); err != nil {
		return err
	}

	headers := []struct {
		col   string
		label string
		width float64
	}{
		{reportColProperty, "Property Name", 25},
		{reportColFloorplan, "Floorplan", 18},
		{reportColBedsUnit, "Beds/Unit", 12},
		{reportColTotal, "Total Beds", 12},
		{reportColPercent, "Prelease %", 12},
		{reportColLeased, "Leased Beds", 12},
	}
	for _, h := range headers {
		cell := fmt.Sprintf("%s%d", h.col, reportHeaderRow)
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

	for row := reportFirstRow; row <= lastRow; row++ {
		srcRow := row - (reportFirstRow - entryFirstRow)
		isAlt := row%2 == 0

		cells := []struct {
			col     string
			formula string
			styleID int
		}{
			{reportColProperty, mirrorFormula(SheetPropertyData, colProperty, srcRow), alt(styles.Body, styles.BodyAlt, isAlt)},
			{reportColFloorplan, mirrorFormula(SheetPropertyData, colFloorplan, srcRow), alt(styles.Body, styles.BodyAlt, isAlt)},
			{reportColBedsUnit, reportBedsPerUnitFormula(SheetPropertyData, srcRow), alt(styles.Center, styles.CenterAlt, isAlt)},
			{reportColTotal, mirrorFormula(SheetPropertyData, colTotalBeds, srcRow), alt(styles.Center, styles.CenterAlt, isAlt)},
			{reportColPercent, mirrorFormula(SheetPropertyData, colEffective, srcRow), alt(styles.Percent, styles.PercentAlt, isAlt)},
			{reportColLeased, mirrorFormula(SheetPropertyData, colLeasedBeds, srcRow), alt(styles.LeasedBold, styles.LeasedBoldAlt, isAlt)},
		}
		for _, c := range cells {
			cell := fmt.Sprintf("%s%d", c.col, row)
			if err := f.SetCellFormula(sheet, cell, c.formula); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, c.styleID); err != nil {
				return err
			}
		}
	}

	totalsRow := lastRow + 3
	labelCell := fmt.Sprintf("%s%d", reportColProperty, totalsRow)
	if err := f.SetCellValue(sheet, labelCell, "TOTALS"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, labelCell, labelCell, styles.TotalsLabel); err != nil {
		return err
	}

	for _, col := range []string{reportColTotal, reportColLeased} {
		cell := fmt.Sprintf("%s%d", col, totalsRow)
		if err := f.SetCellFormula(sheet, cell, sumNonEmptyFormula(col, reportFirstRow, lastRow)); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.TotalsValue); err != nil {
			return err
		}
	}

	overallRow := totalsRow + 2
	overallLabel := fmt.Sprintf("%s%d", reportColProperty, overallRow)
	if err := f.SetCellValue(sheet, overallLabel, "Overall Prelease:"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, overallLabel, overallLabel, styles.TotalsLabel); err != nil {
		return err
	}

	bedsCell := fmt.Sprintf("%s%d", reportColTotal, totalsRow)
	leasedCell := fmt.Sprintf("%s%d", reportColLeased, totalsRow)
	overallCell := fmt.Sprintf("%s%d", reportColFloorplan, overallRow)
	if err := f.SetCellFormula(sheet, overallCell, overallPercentFormula(bedsCell, leasedCell)); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, overallCell, overallCell, styles.OverallValue); err != nil {
		return err
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      reportHeaderRow,
		TopLeftCell: fmt.Sprintf("%s%d", reportColProperty, reportFirstRow),
		ActivePane:  "bottomRight",
	}); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "A", 3)
}
