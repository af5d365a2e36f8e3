// Package service holds the report pipeline's business logic.
// Kept intentionally lean: metric calculation, aggregation, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/statline/player-report-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyInput marks aggregate computations asked to run over zero records;
// a mean over nothing is undefined, so the pipeline aborts instead of guessing.
var ErrEmptyInput = errors.New("empty input")

// FieldError describes a single invalid field in an input record or parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// StatsService defines the per-player and aggregate statistic use cases.
type StatsService interface {
	// AnalyzePlayers derives one PlayerStat per record, preserving input order 1:1.
	// The first validation error aborts with no partial result.
	AnalyzePlayers(ctx context.Context, players []model.PlayerRecord, totalWeeks float64) ([]model.PlayerStat, error)
	// ComputeGlobal aggregates the full stat collection into a GlobalReport.
	ComputeGlobal(stats []model.PlayerStat) (model.GlobalReport, error)
	// TopPlayer returns the stat with strictly maximal win rate; first wins ties.
	TopPlayer(stats []model.PlayerStat) (model.PlayerStat, error)
	// AssembleReport is pure construction; no validation beyond shape.
	AssembleReport(stats []model.PlayerStat, top model.PlayerStat, global model.GlobalReport) model.Report
}

// ReportService runs the whole pipeline: load, analyze, aggregate, assemble, persist.
type ReportService interface {
	Generate(ctx context.Context) (model.Report, error)
}
