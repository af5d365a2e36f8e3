package store_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline/player-report-service/internal/model"
	"github.com/statline/player-report-service/internal/store"
)

func newStore(t *testing.T) (*store.FileStore, string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "players.json")
	out := filepath.Join(dir, "report.json")
	return store.NewFileStore(in, out, zerolog.New(io.Discard)), in, out
}

func TestLoadPlayers(t *testing.T) {
	s, in, _ := newStore(t)
	content := `[
  {"id": 1, "name": "A", "matches": 10, "wins": 5, "hoursPlayed": 100},
  {"id": 2, "name": "B", "matches": 0, "wins": 0, "hoursPlayed": 50.5}
]`
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	players, err := s.LoadPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, model.PlayerRecord{ID: 1, Name: "A", Matches: 10, Wins: 5, HoursPlayed: 100}, players[0])
	assert.Equal(t, 50.5, players[1].HoursPlayed)
}

func TestLoadPlayers_MissingFile(t *testing.T) {
	s, _, _ := newStore(t)
	_, err := s.LoadPlayers(context.Background())
	require.ErrorIs(t, err, store.ErrLoad)
}

func TestLoadPlayers_MalformedJSON(t *testing.T) {
	s, in, _ := newStore(t)
	require.NoError(t, os.WriteFile(in, []byte(`[{"id": 1,`), 0o644))

	_, err := s.LoadPlayers(context.Background())
	require.ErrorIs(t, err, store.ErrLoad)
}

func TestLoadPlayers_RootNotArray(t *testing.T) {
	s, in, _ := newStore(t)
	require.NoError(t, os.WriteFile(in, []byte(`{"id": 1}`), 0o644))

	_, err := s.LoadPlayers(context.Background())
	require.ErrorIs(t, err, store.ErrLoad)
}

func TestSaveReport_RoundTrip(t *testing.T) {
	s, _, out := newStore(t)
	report := model.Report{
		Stats: []model.PlayerStat{
			{ID: 1, Name: "A", WinRate: 50, AvgHours: 10},
			{ID: 2, Name: "B", WinRate: 0, AvgHours: 5},
		},
		TopPlayer: model.PlayerStat{ID: 1, Name: "A", WinRate: 50, AvgHours: 10},
		Global:    model.GlobalReport{AverageWinRate: 25, AverageHours: 7.5, MostActivePlayer: "A"},
	}

	require.NoError(t, s.SaveReport(context.Background(), report))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got model.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, report, got)
}

func TestSaveReport_Indentation(t *testing.T) {
	s, _, out := newStore(t)
	report := model.Report{Stats: []model.PlayerStat{{ID: 1, Name: "A"}}}

	require.NoError(t, s.SaveReport(context.Background(), report))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"stats\""), "expected 2-space indented output, got: %s", data)
}

func TestSaveReport_Overwrite(t *testing.T) {
	s, _, out := newStore(t)
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	require.NoError(t, s.SaveReport(context.Background(), model.Report{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestSaveReport_UnwritableSink(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "missing", "report.json")
	s := store.NewFileStore(filepath.Join(dir, "players.json"), out, zerolog.New(io.Discard))

	err := s.SaveReport(context.Background(), model.Report{})
	require.ErrorIs(t, err, store.ErrPersist)
}
