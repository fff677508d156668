package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `name: CampusSurvey
rowCapacity: 25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "CampusSurvey" {
		t.Errorf("name = %q, want CampusSurvey", cfg.Name)
	}
	if cfg.RowCapacity != 25 {
		t.Errorf("row capacity = %d, want 25", cfg.RowCapacity)
	}
	// Fields absent from the file keep their defaults.
	if len(cfg.MarketAverages) != 6 {
		t.Errorf("market averages = %d, want 6 defaults", len(cfg.MarketAverages))
	}
}

func TestLoadOverridesMarketAverages(t *testing.T) {
	path := writeConfigFile(t, `marketAverages:
  - bedroomType: "Studio"
    percent: 0.40
  - bedroomType: "1 BR"
    percent: 0.48
  - bedroomType: "2 BR"
    percent: 0.52
  - bedroomType: "3 BR"
    percent: 0.58
  - bedroomType: "4 BR"
    percent: 0.50
  - bedroomType: "5 BR"
    percent: 0.46
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MarketAverages[0].Percent != 0.40 {
		t.Errorf("studio percent = %v, want 0.40", cfg.MarketAverages[0].Percent)
	}
	if cfg.Name != "MarketSurvey" {
		t.Errorf("name = %q, want default MarketSurvey", cfg.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read workbook config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "name: [unclosed")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	} else if !strings.Contains(err.Error(), "failed to parse workbook config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	path := writeConfigFile(t, `marketAverages:
  - bedroomType: "Studio"
    percent: 1.5
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for out-of-range percent")
	} else if !strings.Contains(err.Error(), "must be within [0,1]") {
		t.Errorf("unexpected error: %v", err)
	}
}
