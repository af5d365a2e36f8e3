package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults reproduce the zero-configuration behavior: fixed relative
// paths and a 10-week averaging window.
const (
	defaultInputPath  = "players.json"
	defaultOutputPath = "report.json"
	defaultTotalWeeks = 10
)

// Load reads configuration from the given file plus APP_* environment
// overrides. A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("report.input_path", defaultInputPath)
	v.SetDefault("report.output_path", defaultOutputPath)
	v.SetDefault("report.total_weeks", defaultTotalWeeks)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// no config file present; run on defaults and env
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(config.Report); err != nil {
		return nil, fmt.Errorf("report config validation error: %w", err)
	}
	return &config, nil
}
