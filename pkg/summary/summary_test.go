package summary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/statline/player-report-service/internal/model"
	"github.com/statline/player-report-service/pkg/summary"
)

func TestRender(t *testing.T) {
	report := model.Report{
		TopPlayer: model.PlayerStat{Name: "A", WinRate: 50},
		Global:    model.GlobalReport{AverageWinRate: 25, MostActivePlayer: "A"},
	}

	out := summary.Render(report, "report.json")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "Report written to report.json", lines[0])
	assert.Equal(t, "Top player: A (50.0% win rate)", lines[1])
	assert.Equal(t, "Average win rate: 25.00%", lines[2])
	assert.Equal(t, "Most active player: A", lines[3])
}

func TestRender_Rounding(t *testing.T) {
	report := model.Report{
		TopPlayer: model.PlayerStat{Name: "B", WinRate: 200.0 / 3.0},
		Global:    model.GlobalReport{AverageWinRate: 100.0 / 3.0, MostActivePlayer: "C"},
	}

	out := summary.Render(report, "out.json")
	assert.Contains(t, out, "Top player: B (66.7% win rate)")
	assert.Contains(t, out, "Average win rate: 33.33%")
	assert.Contains(t, out, "Most active player: C")
}
