package main

import (
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"kdd-pipeline/internal/config"
	"kdd-pipeline/internal/generator"
	"kdd-pipeline/internal/loader"
	"kdd-pipeline/internal/report"
	"kdd-pipeline/internal/schema"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	runID := uuid.NewString()
	log.Printf("run %s: starting generate -> load -> report", runID)

	if err := run(cfg); err != nil {
		log.Printf("run %s failed: %v", runID, err)
		log.Println("check that the working directory is writable and the data file is intact; the data file is left in place for the next run")
		os.Exit(1)
	}

	log.Printf("run %s: analysis complete, two charts generated", runID)
}

func run(cfg config.Settings) error {
	faker := gofakeit.New(cfg.Seed)

	log.Printf("generating %d rows of synthetic data...", cfg.Rows)
	records := generator.New(faker).Records(cfg.Rows)
	if err := generator.WriteFile(cfg.FilePath, records); err != nil {
		return err
	}
	log.Printf("data saved to %s, shape (%d, %d)", cfg.FilePath, len(records), schema.ColumnCount)

	table, err := loader.Load(cfg.FilePath)
	if err != nil {
		return err
	}
	loader.Inspect(os.Stdout, table, cfg.PreviewRows)

	return report.New(cfg, os.Stdout).Run(table)
}
