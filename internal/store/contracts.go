package store

import (
	"context"

	"github.com/statline/player-report-service/internal/model"
)

// PlayerSource declares where raw player records come from.
// I return domain models and surface domain errors from errors.go rather than raw I/O failures.
type PlayerSource interface {
	LoadPlayers(ctx context.Context) ([]model.PlayerRecord, error)
}

// ReportSink declares where the finished report goes.
// A single call either persists the whole report or fails; there is no partial write contract.
type ReportSink interface {
	SaveReport(ctx context.Context, r model.Report) error
}
