package service

import (
	"math"

	"github.com/statline/player-report-service/internal/model"
)

// DefaultTotalWeeks is the analyzer-side fallback for the averaging window.
// The entry point passes its own configured value; the two are deliberately
// independent so the caller always controls the effective window.
const DefaultTotalWeeks = 12.0

// WinRate returns wins/matches as a percentage, and exactly 0 when the
// player has no matches. Negative counts fail validation.
func WinRate(p model.PlayerRecord) (float64, error) {
	var ferrs []FieldError
	if p.Matches < 0 {
		ferrs = append(ferrs, FieldError{Field: "matches", Message: "must be >= 0"})
	}
	if p.Wins < 0 {
		ferrs = append(ferrs, FieldError{Field: "wins", Message: "must be >= 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return 0, err
	}
	if p.Matches == 0 {
		return 0, nil
	}
	return float64(p.Wins) / float64(p.Matches) * 100, nil
}

// AverageHours returns hoursPlayed spread over totalWeeks.
// totalWeeks must be a positive finite number; hoursPlayed must be
// non-negative and finite.
func AverageHours(p model.PlayerRecord, totalWeeks float64) (float64, error) {
	var ferrs []FieldError
	if totalWeeks <= 0 || math.IsNaN(totalWeeks) || math.IsInf(totalWeeks, 0) {
		ferrs = append(ferrs, FieldError{Field: "total_weeks", Message: "must be a positive finite number"})
	}
	if p.HoursPlayed < 0 || math.IsNaN(p.HoursPlayed) || math.IsInf(p.HoursPlayed, 0) {
		ferrs = append(ferrs, FieldError{Field: "hoursPlayed", Message: "must be a non-negative finite number"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return 0, err
	}
	return p.HoursPlayed / totalWeeks, nil
}
