package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/statline/player-report-service/internal/config"
	"github.com/statline/player-report-service/internal/logger"
	"github.com/statline/player-report-service/internal/service"
	"github.com/statline/player-report-service/internal/store"
	"github.com/statline/player-report-service/pkg/summary"
)

func main() {
	// Load application config (config.yaml is optional; defaults apply)
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	runLog := appLogger.With().Str("run_id", uuid.NewString()).Logger()

	fileStore := store.NewFileStore(cfg.Report.InputPath, cfg.Report.OutputPath, runLog)
	stats := service.NewStatsService(runLog)
	pipeline := service.NewReportService(fileStore, fileStore, stats, cfg.Report.TotalWeeks, runLog)

	report, err := pipeline.Generate(context.Background())
	if err != nil {
		runLog.Fatal().Err(err).Msg("❌ Report generation failed")
	}

	fmt.Print(summary.Render(report, cfg.Report.OutputPath))
}
