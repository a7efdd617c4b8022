package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/salarycast/salarycast/internal/logging"
	"github.com/salarycast/salarycast/pkg/config"
	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/salarycast/salarycast/pkg/model"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := logging.Setup(cfg.Log)

	table, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info("dataset loaded",
		"path", cfg.Dataset.Path,
		"rows", table.Len(),
		"dropped", table.Dropped,
	)
	for col, missing := range table.MissingCounts() {
		if missing > 0 {
			logger.Warn("column has missing values", "column", col, "missing", missing)
		}
	}

	report, err := model.Train(table, model.TrainOptions{
		Trees:    cfg.Dataset.TreeCount,
		Seed:     cfg.Dataset.Seed,
		TestSize: cfg.Dataset.TestSize,
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	logger.Info("model trained",
		"train_rows", report.TrainRows,
		"test_rows", report.TestRows,
		"trees", cfg.Dataset.TreeCount,
	)

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s\n", bold("Held-out evaluation"))
	fmt.Printf("  R²:   %s\n", green(fmt.Sprintf("%.4f", report.Metrics.R2)))
	fmt.Printf("  MAE:  %s\n", cyan(fmt.Sprintf("%.2f", report.Metrics.MAE)))
	fmt.Printf("  RMSE: %s\n", cyan(fmt.Sprintf("%.2f", report.Metrics.RMSE)))

	if err := report.Artifact.Save(cfg.Model.Path); err != nil {
		return fmt.Errorf("failed to save model artifact: %w", err)
	}
	logger.Info("model saved", "path", cfg.Model.Path)
	return nil
}
