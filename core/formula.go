package core

import (
	"fmt"
	"strings"
)

// Formula templating for the derived columns. Every branch on a bedroom cell is
// generated from the BedroomType enum so the lookup table exists exactly once,
// even though the emitted formulas are duplicated across sheets on purpose:
// the report derives beds-per-unit from the bedroom column directly, so either
// sheet survives deletion of the other.
//
// All derived formulas degrade to an empty string when a required input is
// missing. The host spreadsheet must never display a formula error for an
// unfilled row.

// bedsPerUnitCases emits the IF chain mapping a bedroom-type cell to its
// beds-per-unit count. The fallback lands when the cell matches no label,
// which only happens if the droplist constraint was bypassed by hand.
func bedsPerUnitCases(cellRef, fallback string) string {
	var b strings.Builder
	for _, bt := range BedroomTypes {
		fmt.Fprintf(&b, `IF(%s=%q,%d,`, cellRef, bt.Label(), bt.BedsPerUnit())
	}
	b.WriteString(fallback)
	b.WriteString(strings.Repeat(")", len(BedroomTypes)))
	return b.String()
}

// effectivePercentFormula prefers the row's explicit prelease percentage and
// falls back to the market average for the row's bedroom type. Empty when the
// bedroom type is also blank.
func effectivePercentFormula(row int, refs *MarketRefs) string {
	var b strings.Builder
	fmt.Fprintf(&b, `IF(%s%d<>"",%s%d,`, colPrelease, row, colPrelease, row)
	for _, bt := range BedroomTypes {
		fmt.Fprintf(&b, `IF(%s%d=%q,%s,`, colBedrooms, row, bt.Label(), refs.Ref(bt))
	}
	b.WriteString(`""`)
	b.WriteString(strings.Repeat(")", len(BedroomTypes)+1))
	return b.String()
}

// totalBedsFormula multiplies beds-per-unit by the unit count. Empty when
// either the bedroom type or the unit count is blank.
func totalBedsFormula(row int) string {
	bedsRef := fmt.Sprintf("%s%d", colBedrooms, row)
	return fmt.Sprintf(`IF(OR(%s%d="",%s%d=""),"",%s*%s%d)`,
		colBedrooms, row, colUnits, row, bedsPerUnitCases(bedsRef, "0"), colUnits, row)
}

// leasedBedsFormula rounds total beds times the effective percentage to the
// nearest whole bed. Empty when either operand is blank.
func leasedBedsFormula(row int) string {
	return fmt.Sprintf(`IF(OR(%s%d="",%s%d=""),"",ROUND(%s%d*%s%d,0))`,
		colTotalBeds, row, colEffective, row, colTotalBeds, row, colEffective, row)
}

// mirrorFormula reproduces a source cell, rendering empty instead of zero when
// the source is blank.
func mirrorFormula(sourceSheet, col string, row int) string {
	ref := fmt.Sprintf("'%s'!%s%d", sourceSheet, col, row)
	return fmt.Sprintf(`IF(%s="","",%s)`, ref, ref)
}

// reportBedsPerUnitFormula recomputes beds-per-unit from the entry sheet's
// bedroom column rather than mirroring an intermediate the entry sheet does
// not expose.
func reportBedsPerUnitFormula(sourceSheet string, row int) string {
	ref := fmt.Sprintf("'%s'!%s%d", sourceSheet, colBedrooms, row)
	return fmt.Sprintf(`IF(%s="","",%s)`, ref, bedsPerUnitCases(ref, `""`))
}

// sumNonEmptyFormula totals a derived column, skipping rows whose formulas
// evaluated to the empty string.
func sumNonEmptyFormula(col string, firstRow, lastRow int) string {
	return fmt.Sprintf(`SUMIF(%s%d:%s%d,"<>""")`, col, firstRow, col, lastRow)
}

// overallPercentFormula divides leased beds by total beds, rendering empty
// instead of a division error when no beds have been entered.
func overallPercentFormula(bedsCell, leasedCell string) string {
	return fmt.Sprintf(`IF(%s=0,"",%s/%s)`, bedsCell, leasedCell, bedsCell)
}
