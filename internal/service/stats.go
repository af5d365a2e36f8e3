package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/statline/player-report-service/internal/model"
)

type statsService struct {
	log zerolog.Logger
}

func NewStatsService(logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{log: l}
}

func (s *statsService) AnalyzePlayers(_ context.Context, players []model.PlayerRecord, totalWeeks float64) ([]model.PlayerStat, error) {
	stats := make([]model.PlayerStat, 0, len(players))
	for i, p := range players {
		rate, err := WinRate(p)
		if err != nil {
			s.log.Debug().Interface("field_errors", FieldErrors(err)).Int("index", i).Int64("player_id", p.ID).Msg("player validation failed")
			return nil, fmt.Errorf("player %d (%s): %w", p.ID, p.Name, err)
		}
		hours, err := AverageHours(p, totalWeeks)
		if err != nil {
			s.log.Debug().Interface("field_errors", FieldErrors(err)).Int("index", i).Int64("player_id", p.ID).Msg("player validation failed")
			return nil, fmt.Errorf("player %d (%s): %w", p.ID, p.Name, err)
		}
		stats = append(stats, model.PlayerStat{
			ID:       p.ID,
			Name:     p.Name,
			WinRate:  rate,
			AvgHours: hours,
		})
	}
	return stats, nil
}

func (s *statsService) ComputeGlobal(stats []model.PlayerStat) (model.GlobalReport, error) {
	if len(stats) == 0 {
		return model.GlobalReport{}, fmt.Errorf("%w: no player stats to aggregate", ErrEmptyInput)
	}

	var sumRate, sumHours float64
	mostActive := stats[0]
	for _, st := range stats {
		sumRate += st.WinRate
		sumHours += st.AvgHours
		if st.AvgHours > mostActive.AvgHours { // strictly greater: first max wins ties
			mostActive = st
		}
	}

	n := float64(len(stats))
	return model.GlobalReport{
		AverageWinRate:   sumRate / n,
		AverageHours:     sumHours / n,
		MostActivePlayer: mostActive.Name,
	}, nil
}

func (s *statsService) TopPlayer(stats []model.PlayerStat) (model.PlayerStat, error) {
	if len(stats) == 0 {
		return model.PlayerStat{}, fmt.Errorf("%w: no player stats to rank", ErrEmptyInput)
	}
	top := stats[0]
	for _, st := range stats[1:] {
		if st.WinRate > top.WinRate { // strictly greater: first max wins ties
			top = st
		}
	}
	return top, nil
}

func (s *statsService) AssembleReport(stats []model.PlayerStat, top model.PlayerStat, global model.GlobalReport) model.Report {
	return model.Report{Stats: stats, TopPlayer: top, Global: global}
}
