package core

import (
	"fmt"
	"testing"

	"github.com/otterholte/market-survey-tool/config"
)

func TestMarketRefsCoverEveryBedroomType(t *testing.T) {
	f := newExcelFile()
	t.Cleanup(func() { _ = f.Close() })

	if _, err := f.NewSheet(SheetMarketAverages); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	styles, err := newStyleSet(f)
	if err != nil {
		t.Fatalf("styles: %v", err)
	}

	g := NewGenerator(config.Default())
	refs, err := g.buildMarketAveragesSheet(f, styles)
	if err != nil {
		t.Fatalf("build market averages sheet: %v", err)
	}

	seen := make(map[string]BedroomType)
	for _, bt := range BedroomTypes {
		cell, ok := refs.Cell(bt)
		if !ok {
			t.Fatalf("no coordinate for bedroom type %q", bt.Label())
		}
		if prev, dup := seen[cell]; dup {
			t.Errorf("coordinate %s shared by %q and %q", cell, prev.Label(), bt.Label())
		}
		seen[cell] = bt
	}
}

func TestMarketAverageDefaultValues(t *testing.T) {
	f := buildTestWorkbook(t, false)

	// Defaults land in table order starting at C7, one row per bedroom type.
	wants := []struct {
		label   string
		percent string
	}{
		{"Studio", "0.45"},
		{"1 BR", "0.5"},
		{"2 BR", "0.55"},
		{"3 BR", "0.6"},
		{"4 BR", "0.55"},
		{"5 BR", "0.5"},
	}
	for i, w := range wants {
		row := marketFirstRow + i
		labelCell := fmt.Sprintf("%s%d", marketLabelCol, row)
		if got := rawValue(t, f, SheetMarketAverages, labelCell); got != w.label {
			t.Errorf("%s = %q, want %q", labelCell, got, w.label)
		}
		valueCell := fmt.Sprintf("%s%d", marketValueCol, row)
		if got := rawValue(t, f, SheetMarketAverages, valueCell); got != w.percent {
			t.Errorf("%s = %q, want %q", valueCell, got, w.percent)
		}
	}
}

func TestMarketRefQualifiesSheetName(t *testing.T) {
	refs := testMarketRefs()
	if got, want := refs.Ref(TwoBR), "'Market Averages'!$C$9"; got != want {
		t.Errorf("Ref(TwoBR) = %q, want %q", got, want)
	}
}
