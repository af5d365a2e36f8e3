// Package summary centralizes the human-readable output printed after a run.
// The entry point relies on it to keep main thin and the format uniform.
package summary

import (
	"fmt"
	"strings"

	"github.com/statline/player-report-service/internal/model"
)

// Render formats the four-line run summary: where the report went, the top
// player with win rate to one decimal, the average win rate to two decimals,
// and the most active player.
func Render(r model.Report, outputPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report written to %s\n", outputPath)
	fmt.Fprintf(&b, "Top player: %s (%.1f%% win rate)\n", r.TopPlayer.Name, r.TopPlayer.WinRate)
	fmt.Fprintf(&b, "Average win rate: %.2f%%\n", r.Global.AverageWinRate)
	fmt.Fprintf(&b, "Most active player: %s\n", r.Global.MostActivePlayer)
	return b.String()
}
