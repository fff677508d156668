package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/otterholte/market-survey-tool/config"
)

// Sheet names are part of the workbook contract: formulas cross-reference the
// sheets by name, so renaming one breaks every reference into it.
const (
	SheetMarketAverages = "Market Averages"
	SheetPropertyData   = "Property Data"
	SheetReport         = "Leased Beds Report"

	defaultSheetName = "Sheet1"
)

// Generator assembles the workbook in a single pass: styles, reference sheet,
// entry sheet, report sheet, then the optional demonstration data.
type Generator struct {
	Config *config.WorkbookConfig
}

func NewGenerator(cfg *config.WorkbookConfig) *Generator {
	return &Generator{Config: cfg}
}

func replacePlaceholders(input string, params map[string]string) string {
	output := input
	for k, v := range params {
		placeholder := fmt.Sprintf("${%s}", k)
		output = strings.ReplaceAll(output, placeholder, v)
	}
	return output
}

// resolveParameters merges the configured output-path parameters with the
// built-in "date" parameter, expanding $date: expressions against now.
func (g *Generator) resolveParameters(now time.Time) map[string]string {
	params := map[string]string{
		"date": now.Format("2006-01-02"),
	}
	for k, v := range g.Config.Parameters {
		if strings.HasPrefix(v, "$date:") {
			if resolved, err := ParseDynamicDate(v, now); err == nil {
				params[k] = resolved
				continue
			}
		}
		params[k] = v
	}
	return params
}

// Generate builds the workbook and writes it to outputPath, overwriting any
// existing file. A path without an extension is treated as a directory and the
// configured workbook name is appended. Returns the resolved output path.
func (g *Generator) Generate(outputPath string, includeSampleData bool) (path string, err error) {
	if err := config.NewValidator().ValidateWorkbook(g.Config); err != nil {
		return "", fmt.Errorf("invalid workbook config: %w", err)
	}

	outputPath = replacePlaceholders(outputPath, g.resolveParameters(time.Now()))
	if filepath.Ext(outputPath) == "" {
		outputPath = filepath.Join(outputPath, g.Config.Name+".xlsx")
	}

	f := newExcelFile()
	defer func(f ExcelFile) {
		if closeErr := f.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close workbook: %w", closeErr)
			} else {
				err = fmt.Errorf("%w; (cleanup error: %v)", err, closeErr)
			}
		}
	}(f)

	if err := g.build(f, includeSampleData); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	slog.Info("Saving workbook", "path", outputPath)
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save output: %w", err)
	}
	return outputPath, nil
}

// build assembles the three sheets into f. Split from Generate so tests can
// inspect the workbook without touching the filesystem.
func (g *Generator) build(f ExcelFile, includeSampleData bool) error {
	styles, err := newStyleSet(f)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	for _, name := range []string{SheetMarketAverages, SheetPropertyData, SheetReport} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}
	f.DeleteSheet(defaultSheetName)

	slog.Info("Building sheet", "sheet", SheetMarketAverages)
	refs, err := g.buildMarketAveragesSheet(f, styles)
	if err != nil {
		return fmt.Errorf("building sheet %s: %w", SheetMarketAverages, err)
	}

	slog.Info("Building sheet", "sheet", SheetPropertyData, "rows", g.Config.RowCapacity)
	if err := g.buildPropertyDataSheet(f, styles, refs); err != nil {
		return fmt.Errorf("building sheet %s: %w", SheetPropertyData, err)
	}

	slog.Info("Building sheet", "sheet", SheetReport)
	if err := g.buildReportSheet(f, styles); err != nil {
		return fmt.Errorf("building sheet %s: %w", SheetReport, err)
	}

	if includeSampleData {
		slog.Info("Adding sample data", "rows", len(SampleRows()))
		if err := g.writeSampleData(f); err != nil {
			return fmt.Errorf("writing sample data: %w", err)
		}
	}

	// UX: Reset view to A1 for all sheets and land the user on the entry sheet.
	for _, sheet := range f.GetSheetList() {
		// Ignore error for SetSelection as it's UX improvement
		_ = f.SetSelection(sheet, "A1")
	}
	if idx, err := f.GetSheetIndex(SheetPropertyData); err == nil {
		f.SetActiveSheet(idx)
	}

	return nil
}
