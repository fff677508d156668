package core

import "github.com/xuri/excelize/v2"

// Workbook palette. The alternating-row and flag fills are light enough that
// black body text stays readable on top of them.
const (
	colorHeaderFill  = "1F4E79"
	colorAltRowFill  = "D6E3F8"
	colorAccentFill  = "BDD7EE"
	colorFlagFill    = "FFF2CC"
	colorBorder      = "B4C6E7"
	colorTitleText   = "1F4E79"
	colorSubtleText  = "666666"
	colorHeaderText  = "FFFFFF"
)

const (
	fontName       = "Segoe UI"
	percentFormat  = "0.0%"
	longDateFormat = "mmmm d, yyyy"
)

// StyleSet holds the style IDs shared by the sheet builders. Styles are
// registered once per file; builders only apply the IDs.
type StyleSet struct {
	Title       int
	Instruction int
	Header      int

	Body    int
	BodyAlt int

	Center    int
	CenterAlt int

	Percent    int
	PercentAlt int

	LeasedBold    int
	LeasedBoldAlt int

	TotalsLabel int
	TotalsValue int

	OverallValue int
	ReportDate   int

	// MarketFlag is a conditional style, applied live by the host spreadsheet
	// when a row falls back to the market average.
	MarketFlag int
}

// Alt picks the alternating-row variant of a base/alt style pair.
func alt(base, altID int, isAlt bool) int {
	if isAlt {
		return altID
	}
	return base
}

func segoe(size float64, bold, italic bool, color string) *excelize.Font {
	return &excelize.Font{
		Family: fontName,
		Size:   size,
		Bold:   bold,
		Italic: italic,
		Color:  color,
	}
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: colorBorder, Style: 1},
		{Type: "right", Color: colorBorder, Style: 1},
		{Type: "top", Color: colorBorder, Style: 1},
		{Type: "bottom", Color: colorBorder, Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

// newStyleSet registers all workbook styles on the given file.
func newStyleSet(f ExcelFile) (*StyleSet, error) {
	s := &StyleSet{}
	pctFmt := percentFormat
	dateFmt := longDateFormat

	// Each entry pairs a destination with its style definition; the loop keeps
	// the registration code from repeating the NewStyle error handling.
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.Title, &excelize.Style{
			Font: segoe(14, true, false, colorTitleText),
		}},
		{&s.Instruction, &excelize.Style{
			Font: segoe(10, false, true, colorSubtleText),
		}},
		{&s.Header, &excelize.Style{
			Font:      segoe(11, true, false, colorHeaderText),
			Fill:      solidFill(colorHeaderFill),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thinBorder(),
		}},
		{&s.Body, &excelize.Style{
			Font:   segoe(10, false, false, ""),
			Border: thinBorder(),
		}},
		{&s.BodyAlt, &excelize.Style{
			Font:   segoe(10, false, false, ""),
			Fill:   solidFill(colorAltRowFill),
			Border: thinBorder(),
		}},
		{&s.Center, &excelize.Style{
			Font:      segoe(10, false, false, ""),
			Alignment: centered(),
			Border:    thinBorder(),
		}},
		{&s.CenterAlt, &excelize.Style{
			Font:      segoe(10, false, false, ""),
			Fill:      solidFill(colorAltRowFill),
			Alignment: centered(),
			Border:    thinBorder(),
		}},
		{&s.Percent, &excelize.Style{
			Font:         segoe(10, false, false, ""),
			Alignment:    centered(),
			Border:       thinBorder(),
			CustomNumFmt: &pctFmt,
		}},
		{&s.PercentAlt, &excelize.Style{
			Font:         segoe(10, false, false, ""),
			Fill:         solidFill(colorAltRowFill),
			Alignment:    centered(),
			Border:       thinBorder(),
			CustomNumFmt: &pctFmt,
		}},
		{&s.LeasedBold, &excelize.Style{
			Font:      segoe(10, true, false, ""),
			Alignment: centered(),
			Border:    thinBorder(),
		}},
		{&s.LeasedBoldAlt, &excelize.Style{
			Font:      segoe(10, true, false, ""),
			Fill:      solidFill(colorAltRowFill),
			Alignment: centered(),
			Border:    thinBorder(),
		}},
		{&s.TotalsLabel, &excelize.Style{
			Font: segoe(11, true, false, colorTitleText),
		}},
		{&s.TotalsValue, &excelize.Style{
			Font:      segoe(11, true, false, ""),
			Fill:      solidFill(colorAccentFill),
			Alignment: centered(),
			Border:    thinBorder(),
		}},
		{&s.OverallValue, &excelize.Style{
			Font:         segoe(12, true, false, colorTitleText),
			CustomNumFmt: &pctFmt,
		}},
		{&s.ReportDate, &excelize.Style{
			Font:         segoe(10, false, true, colorSubtleText),
			CustomNumFmt: &dateFmt,
		}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.dst = id
	}

	flagID, err := f.NewConditionalStyle(&excelize.Style{
		Fill: solidFill(colorFlagFill),
	})
	if err != nil {
		return nil, err
	}
	s.MarketFlag = flagID

	return s, nil
}
