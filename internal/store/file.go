package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/statline/player-report-service/internal/model"
)

// FileStore implements PlayerSource and ReportSink over two flat JSON files.
// The report write is a direct overwrite; there is no atomic replace or backup.
type FileStore struct {
	inputPath  string
	outputPath string
	log        zerolog.Logger
}

var (
	_ PlayerSource = (*FileStore)(nil)
	_ ReportSink   = (*FileStore)(nil)
)

// NewFileStore builds a store reading players from inputPath and writing the report to outputPath.
func NewFileStore(inputPath, outputPath string, logger zerolog.Logger) *FileStore {
	l := logger.With().Str("module", "store").Str("component", "file").Logger()
	return &FileStore{inputPath: inputPath, outputPath: outputPath, log: l}
}

// LoadPlayers reads the input file and parses it as a JSON array of player records.
// A single attempt; unreadable or malformed input wraps ErrLoad.
func (s *FileStore) LoadPlayers(_ context.Context) ([]model.PlayerRecord, error) {
	data, err := os.ReadFile(s.inputPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.inputPath).Msg("reading players failed")
		return nil, fmt.Errorf("%w: reading %s: %v", ErrLoad, s.inputPath, err)
	}

	var players []model.PlayerRecord
	if err := json.Unmarshal(data, &players); err != nil {
		s.log.Error().Err(err).Str("path", s.inputPath).Msg("parsing players failed")
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrLoad, s.inputPath, err)
	}

	s.log.Debug().Int("players", len(players)).Str("path", s.inputPath).Msg("players loaded")
	return players, nil
}

// SaveReport serializes the report with 2-space indentation and writes it to the output path.
func (s *FileStore) SaveReport(_ context.Context, r model.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding report: %v", ErrPersist, err)
	}
	if err := os.WriteFile(s.outputPath, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", s.outputPath).Msg("writing report failed")
		return fmt.Errorf("%w: writing %s: %v", ErrPersist, s.outputPath, err)
	}
	s.log.Debug().Str("path", s.outputPath).Int("bytes", len(data)).Msg("report written")
	return nil
}
