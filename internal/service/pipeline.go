package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/statline/player-report-service/internal/model"
	"github.com/statline/player-report-service/internal/store"
)

type reportService struct {
	source     store.PlayerSource
	sink       store.ReportSink
	stats      StatsService
	totalWeeks float64
	log        zerolog.Logger
}

// NewReportService wires the pipeline. A non-positive totalWeeks falls back
// to DefaultTotalWeeks; the caller's configured value wins otherwise.
func NewReportService(source store.PlayerSource, sink store.ReportSink, stats StatsService, totalWeeks float64, logger zerolog.Logger) ReportService {
	if totalWeeks <= 0 {
		totalWeeks = DefaultTotalWeeks
	}
	l := logger.With().Str("module", "service").Str("component", "report").Logger()
	return &reportService{source: source, sink: sink, stats: stats, totalWeeks: totalWeeks, log: l}
}

// Generate runs load, analyze, aggregate, assemble and persist in order.
// Every stage fails fast; on any error no report is written.
func (s *reportService) Generate(ctx context.Context) (model.Report, error) {
	start := time.Now()

	players, err := s.source.LoadPlayers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("loading players failed")
		return model.Report{}, err
	}
	s.log.Info().Int("players", len(players)).Float64("total_weeks", s.totalWeeks).Msg("players loaded")

	stats, err := s.stats.AnalyzePlayers(ctx, players, s.totalWeeks)
	if err != nil {
		s.log.Error().Err(err).Msg("analyzing players failed")
		return model.Report{}, err
	}

	global, err := s.stats.ComputeGlobal(stats)
	if err != nil {
		s.log.Error().Err(err).Msg("computing global report failed")
		return model.Report{}, err
	}

	top, err := s.stats.TopPlayer(stats)
	if err != nil {
		s.log.Error().Err(err).Msg("finding top player failed")
		return model.Report{}, err
	}

	report := s.stats.AssembleReport(stats, top, global)

	if err := s.sink.SaveReport(ctx, report); err != nil {
		s.log.Error().Err(err).Msg("saving report failed")
		return model.Report{}, err
	}

	s.log.Info().Dur("took", time.Since(start)).Str("top_player", top.Name).Msg("report generated")
	return report, nil
}
