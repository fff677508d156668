package core

import "github.com/xuri/excelize/v2"

// ExcelFile abstracts workbook operations to decouple the sheet builders from excelize.
type ExcelFile interface {
	Close() error
	NewSheet(name string) (int, error)
	DeleteSheet(name string)
	GetSheetIndex(name string) (int, error)
	GetSheetList() []string
	SetActiveSheet(index int)
	SetSelection(sheetName, cell string) error
	SaveAs(name string) error
	SetCellValue(sheet, cell string, value interface{}) error
	SetCellFormula(sheet, cell, formula string) error
	GetCellValue(sheet, cell string) (string, error)
	GetCellFormula(sheet, cell string) (string, error)
	CalcCellValue(sheet, cell string) (string, error)
	SetCellStyle(sheet, hcell, vcell string, styleID int) error
	NewStyle(style *excelize.Style) (int, error)
	NewConditionalStyle(style *excelize.Style) (int, error)
	SetConditionalFormat(sheet, rangeRef string, opts []excelize.ConditionalFormatOptions) error
	GetConditionalFormats(sheet string) (map[string][]excelize.ConditionalFormatOptions, error)
	AddDataValidation(sheet string, dv *excelize.DataValidation) error
	MergeCell(sheet, hcell, vcell string) error
	SetColWidth(sheet, startCol, endCol string, width float64) error
	SetRowHeight(sheet string, row int, height float64) error
	SetPanes(sheet string, panes *excelize.Panes) error
}

type ExcelizeFile struct {
	file *excelize.File
}

// newExcelFile creates an empty in-memory workbook.
func newExcelFile() ExcelFile {
	return &ExcelizeFile{file: excelize.NewFile()}
}

func openExcelFile(path string) (ExcelFile, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelizeFile{file: file}, nil
}

func (e *ExcelizeFile) Close() error {
	return e.file.Close()
}

func (e *ExcelizeFile) NewSheet(name string) (int, error) {
	return e.file.NewSheet(name)
}

func (e *ExcelizeFile) DeleteSheet(name string) {
	e.file.DeleteSheet(name)
}

func (e *ExcelizeFile) GetSheetIndex(name string) (int, error) {
	return e.file.GetSheetIndex(name)
}

func (e *ExcelizeFile) GetSheetList() []string {
	return e.file.GetSheetList()
}

func (e *ExcelizeFile) SetActiveSheet(index int) {
	e.file.SetActiveSheet(index)
}

func (e *ExcelizeFile) SaveAs(name string) error {
	return e.file.SaveAs(name)
}

func (e *ExcelizeFile) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

func (e *ExcelizeFile) SetCellFormula(sheet, cell, formula string) error {
	return e.file.SetCellFormula(sheet, cell, formula)
}

func (e *ExcelizeFile) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

func (e *ExcelizeFile) GetCellFormula(sheet, cell string) (string, error) {
	return e.file.GetCellFormula(sheet, cell)
}

// CalcCellValue evaluates a cell and returns the raw result, independent of the
// cell's number format. Raw mode keeps formula assertions stable regardless of
// the percentage/date formats applied to the derived columns.
func (e *ExcelizeFile) CalcCellValue(sheet, cell string) (string, error) {
	return e.file.CalcCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}

func (e *ExcelizeFile) SetCellStyle(sheet, hcell, vcell string, styleID int) error {
	return e.file.SetCellStyle(sheet, hcell, vcell, styleID)
}

func (e *ExcelizeFile) NewStyle(style *excelize.Style) (int, error) {
	return e.file.NewStyle(style)
}

func (e *ExcelizeFile) NewConditionalStyle(style *excelize.Style) (int, error) {
	return e.file.NewConditionalStyle(style)
}

func (e *ExcelizeFile) SetConditionalFormat(sheet, rangeRef string, opts []excelize.ConditionalFormatOptions) error {
	return e.file.SetConditionalFormat(sheet, rangeRef, opts)
}

func (e *ExcelizeFile) GetConditionalFormats(sheet string) (map[string][]excelize.ConditionalFormatOptions, error) {
	return e.file.GetConditionalFormats(sheet)
}

func (e *ExcelizeFile) AddDataValidation(sheet string, dv *excelize.DataValidation) error {
	return e.file.AddDataValidation(sheet, dv)
}

func (e *ExcelizeFile) MergeCell(sheet, hcell, vcell string) error {
	return e.file.MergeCell(sheet, hcell, vcell)
}

func (e *ExcelizeFile) SetColWidth(sheet, startCol, endCol string, width float64) error {
	return e.file.SetColWidth(sheet, startCol, endCol, width)
}

func (e *ExcelizeFile) SetRowHeight(sheet string, row int, height float64) error {
	return e.file.SetRowHeight(sheet, row, height)
}

func (e *ExcelizeFile) SetPanes(sheet string, panes *excelize.Panes) error {
	return e.file.SetPanes(sheet, panes)
}

func (e *ExcelizeFile) SetSelection(sheetName, cell string) error {
	// Set active cell and selection to the specified cell (e.g., "A1") using SetPanes
	// We try to preserve existing panes if possible
	panes, err := e.file.GetPanes(sheetName)
	if err == nil {
		panes.Selection = []excelize.Selection{
			{
				ActiveCell: cell,
				SQRef:      cell,
			},
		}
		return e.file.SetPanes(sheetName, &panes)
	}

	// Fallback if GetPanes fails: assume no panes are set.
	return e.file.SetPanes(sheetName, &excelize.Panes{
		Freeze: false,
		Split:  false,
		Selection: []excelize.Selection{
			{
				ActiveCell: cell,
				SQRef:      cell,
			},
		},
	})
}
