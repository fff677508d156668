package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/otterholte/market-survey-tool/config"

	"github.com/xuri/excelize/v2"
)

// buildTestWorkbook assembles a workbook in memory with the default
// configuration, skipping the save step.
func buildTestWorkbook(t *testing.T, includeSampleData bool) ExcelFile {
	t.Helper()
	f := newExcelFile()
	t.Cleanup(func() { _ = f.Close() })

	g := NewGenerator(config.Default())
	if err := g.build(f, includeSampleData); err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	return f
}

// rawValue reads a stored cell value without number formatting applied.
func rawValue(t *testing.T, f ExcelFile, sheet, cell string) string {
	t.Helper()
	v, err := f.(*ExcelizeFile).file.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("get cell value %s!%s: %v", sheet, cell, err)
	}
	return v
}

// calcValue evaluates a formula cell, raw.
func calcValue(t *testing.T, f ExcelFile, sheet, cell string) string {
	t.Helper()
	v, err := f.CalcCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("calc cell value %s!%s: %v", sheet, cell, err)
	}
	return v
}

func TestReplacePlaceholders(t *testing.T) {
	params := map[string]string{
		"month":  "jan",
		"region": "midwest",
	}

	got := replacePlaceholders("reports/${region}/${month}/survey", params)
	if got != "reports/midwest/jan/survey" {
		t.Fatalf("expected placeholder replacements, got %q", got)
	}
}

func TestGenerateWritesWorkbook(t *testing.T) {
	tmpDir := t.TempDir()

	gen := NewGenerator(config.Default())
	written, err := gen.Generate(tmpDir, true)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// A bare directory gets the configured workbook name appended.
	want := filepath.Join(tmpDir, "MarketSurvey.xlsx")
	if written != want {
		t.Fatalf("resolved path = %s, want %s", written, want)
	}
	if _, err := os.Stat(written); err != nil {
		t.Fatalf("expected output file at %s: %v", written, err)
	}

	f, err := excelize.OpenFile(written)
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer f.Close()

	// Sheet names and order are part of the workbook contract.
	wantSheets := []string{SheetMarketAverages, SheetPropertyData, SheetReport}
	gotSheets := f.GetSheetList()
	if len(gotSheets) != len(wantSheets) {
		t.Fatalf("sheet list = %v, want %v", gotSheets, wantSheets)
	}
	for i := range wantSheets {
		if gotSheets[i] != wantSheets[i] {
			t.Errorf("sheet[%d] = %q, want %q", i, gotSheets[i], wantSheets[i])
		}
	}
}

func TestGenerateOverwritesExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "survey.xlsx")
	if err := os.WriteFile(path, []byte("stale content"), 0644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}

	gen := NewGenerator(config.Default())
	if _, err := gen.Generate(path, false); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("expected a valid workbook to replace the stale file: %v", err)
	}
	f.Close()
}

func TestGenerateOutputPathParameters(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := config.Default()
	cfg.Parameters = map[string]string{
		"month": "$date:month:day:0",
	}

	gen := NewGenerator(cfg)
	written, err := gen.Generate(filepath.Join(tmpDir, "reports", "${month}", "survey.xlsx"), false)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := filepath.Join(tmpDir, "reports", time.Now().Format("2006-01"), "survey.xlsx")
	if written != want {
		t.Fatalf("resolved path = %s, want %s", written, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected output file at %s: %v", want, err)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RowCapacity = 0

	gen := NewGenerator(cfg)
	if _, err := gen.Generate(t.TempDir(), false); err == nil {
		t.Fatal("expected error for zero row capacity")
	} else if !strings.Contains(err.Error(), "invalid workbook config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateRejectsMissingBedroomType(t *testing.T) {
	cfg := config.Default()
	cfg.MarketAverages = cfg.MarketAverages[:5] // drop "5 BR"

	gen := NewGenerator(cfg)
	if _, err := gen.Generate(t.TempDir(), false); err == nil {
		t.Fatal("expected error when a bedroom type has no market average")
	} else if !strings.Contains(err.Error(), "no market average configured") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateActiveSheetIsPropertyData(t *testing.T) {
	f := buildTestWorkbook(t, false)

	ef := f.(*ExcelizeFile).file
	idx := ef.GetActiveSheetIndex()
	if got := ef.GetSheetName(idx); got != SheetPropertyData {
		t.Errorf("active sheet = %q, want %q", got, SheetPropertyData)
	}
}

// Two separate generation runs must produce identical formulas and identical
// evaluated derived values for the bundled dataset.
func TestGenerateDeterministicDerivedValues(t *testing.T) {
	first := buildTestWorkbook(t, true)
	second := buildTestWorkbook(t, true)

	checkCell := func(sheet, cell string) {
		t.Helper()
		f1, err := first.GetCellFormula(sheet, cell)
		if err != nil {
			t.Fatalf("get formula %s!%s: %v", sheet, cell, err)
		}
		f2, err := second.GetCellFormula(sheet, cell)
		if err != nil {
			t.Fatalf("get formula %s!%s: %v", sheet, cell, err)
		}
		if f1 != f2 {
			t.Errorf("%s!%s formula differs between runs: %q vs %q", sheet, cell, f1, f2)
		}
		if v1, v2 := calcValue(t, first, sheet, cell), calcValue(t, second, sheet, cell); v1 != v2 {
			t.Errorf("%s!%s value differs between runs: %q vs %q", sheet, cell, v1, v2)
		}
	}

	for i := range SampleRows() {
		entryRow := entryFirstRow + i
		for _, col := range []string{colEffective, colTotalBeds, colLeasedBeds} {
			checkCell(SheetPropertyData, fmt.Sprintf("%s%d", col, entryRow))
		}
		reportRow := reportFirstRow + i
		for _, col := range []string{reportColBedsUnit, reportColTotal, reportColPercent, reportColLeased} {
			checkCell(SheetReport, fmt.Sprintf("%s%d", col, reportRow))
		}
	}

	totalsRow := reportFirstRow + config.Default().RowCapacity - 1 + 3
	checkCell(SheetReport, fmt.Sprintf("%s%d", reportColTotal, totalsRow))
	checkCell(SheetReport, fmt.Sprintf("%s%d", reportColLeased, totalsRow))
	checkCell(SheetReport, fmt.Sprintf("%s%d", reportColFloorplan, totalsRow+2))
}
