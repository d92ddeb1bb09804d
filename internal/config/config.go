// Package config carries the pipeline settings as one explicit value
// threaded through the generator, loader and reporter stages.
package config

import (
	"kdd-pipeline/internal/env"
)

type Settings struct {
	// Rows is the number of synthetic records to generate.
	Rows int

	// FilePath is the delimited file the generator writes and the loader
	// reads back. Overwritten on every run.
	FilePath string

	// IntervalSize is the number of consecutive rows per trend bucket.
	IntervalSize int

	// TopAttacks caps the top-attack-frequency view.
	TopAttacks int

	// PreviewRows is how many rows the loader prints as a head preview.
	PreviewRows int

	// ChartDir receives the rendered chart pages. Empty means a fresh
	// scratch directory per run.
	ChartDir string

	// OpenCharts opens each rendered chart in the default browser.
	OpenCharts bool

	// Seed fixes the generator's random source; 0 seeds it randomly.
	Seed uint64
}

func Default() Settings {
	return Settings{
		Rows:         5000,
		FilePath:     "kddcup99.csv",
		IntervalSize: 1000,
		TopAttacks:   10,
		PreviewRows:  5,
		OpenCharts:   true,
	}
}

// Load returns the default settings with any KDD_* environment overrides
// applied. A run with no environment set behaves exactly like Default.
func Load() Settings {
	s := Default()

	s.Rows = env.GetEnvInt("KDD_ROWS", s.Rows)
	s.FilePath = env.GetEnvString("KDD_FILE", s.FilePath)
	s.IntervalSize = env.GetEnvInt("KDD_INTERVAL_SIZE", s.IntervalSize)
	s.TopAttacks = env.GetEnvInt("KDD_TOP_ATTACKS", s.TopAttacks)
	s.PreviewRows = env.GetEnvInt("KDD_PREVIEW_ROWS", s.PreviewRows)
	s.ChartDir = env.GetEnvString("KDD_CHART_DIR", s.ChartDir)
	s.OpenCharts = env.GetEnvBool("KDD_OPEN_CHARTS", s.OpenCharts)
	s.Seed = env.GetEnvUint64("KDD_SEED", s.Seed)

	return s
}
