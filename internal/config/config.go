package config

import (
	"github.com/statline/player-report-service/internal/logger"
)

// ReportConfig controls the pipeline: where players come from, where the
// report goes, and the averaging window passed to the analyzer.
type ReportConfig struct {
	InputPath  string  `mapstructure:"input_path" validate:"required"`
	OutputPath string  `mapstructure:"output_path" validate:"required"`
	TotalWeeks float64 `mapstructure:"total_weeks" validate:"gt=0"`
}

type Config struct {
	Report ReportConfig        `mapstructure:"report"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
}
