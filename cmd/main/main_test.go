package main

import (
	"os"
	"path/filepath"
	"testing"

	"kdd-pipeline/internal/config"
)

func testSettings(t *testing.T, rows int) config.Settings {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Rows = rows
	cfg.FilePath = filepath.Join(dir, "kddcup99.csv")
	cfg.ChartDir = filepath.Join(dir, "charts")
	cfg.OpenCharts = false
	cfg.Seed = 7
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testSettings(t, 300)

	if err := run(cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, err := os.Stat(cfg.FilePath); err != nil {
		t.Fatalf("Expected the data file to be left in place: %v", err)
	}

	// 300 seeded rows always contain attacks, so both charts render.
	for _, name := range []string{"top_attacks.html", "attack_trend.html"} {
		if _, err := os.Stat(filepath.Join(cfg.ChartDir, name)); err != nil {
			t.Errorf("Expected %s to be rendered: %v", name, err)
		}
	}
}

func TestRunZeroRows(t *testing.T) {
	cfg := testSettings(t, 0)

	if err := run(cfg); err != nil {
		t.Fatalf("run failed with zero rows: %v", err)
	}

	content, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("Expected an empty data file: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("Expected 0 data rows, got %d bytes", len(content))
	}

	if entries, err := os.ReadDir(cfg.ChartDir); err == nil && len(entries) != 0 {
		t.Errorf("Expected no charts for an empty dataset, found %d", len(entries))
	}
}
