// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// PlayerRecord is one raw entry from the input file. Read-only input;
// nothing downstream mutates it.
type PlayerRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Matches     int64   `json:"matches"`
	Wins        int64   `json:"wins"`
	HoursPlayed float64 `json:"hoursPlayed"`
}

// PlayerStat holds the derived per-player metrics. WinRate is a
// percentage in [0,100]; AvgHours is hours per week.
type PlayerStat struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	WinRate  float64 `json:"winRate"`
	AvgHours float64 `json:"avgHours"`
}

// GlobalReport aggregates statistics across all players.
type GlobalReport struct {
	AverageWinRate   float64 `json:"averageWinRate"`
	AverageHours     float64 `json:"averageHours"`
	MostActivePlayer string  `json:"mostActivePlayer"`
}

// Report is the persisted artifact. Stats preserve input order.
type Report struct {
	Stats     []PlayerStat `json:"stats"`
	TopPlayer PlayerStat   `json:"topPlayer"`
	Global    GlobalReport `json:"global"`
}
