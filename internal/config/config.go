// Package config loads the toolkit configuration from defaults, an
// optional YAML file, and CITYBIKE-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/melody88h/ProjectBike/algo"
	"github.com/melody88h/ProjectBike/report"
	"github.com/melody88h/ProjectBike/stats"
)

// Config represents the complete application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" envconfig:"DATA"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Bench   BenchConfig   `yaml:"bench" envconfig:"BENCH"`
	Stats   StatsConfig   `yaml:"stats" envconfig:"STATS"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DataConfig locates the raw CSV inputs.
type DataConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// OutputConfig locates everything the pipeline writes.
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// BenchConfig contains benchmark harness configuration.
type BenchConfig struct {
	Repeats int `yaml:"repeats" envconfig:"REPEATS" validate:"min=1"`
}

// StatsConfig contains numerical analysis configuration.
type StatsConfig struct {
	ZScoreThreshold float64 `yaml:"zscore_threshold" envconfig:"ZSCORE_THRESHOLD" validate:"gt=0"`
}

// ReportConfig contains report rendering configuration.
type ReportConfig struct {
	TopStations   int `yaml:"top_stations" envconfig:"TOP_STATIONS" validate:"min=1"`
	HistogramBins int `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" validate:"min=1"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

var validate = validator.New()

// DefaultConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Data:   DataConfig{Dir: "data"},
		Output: OutputConfig{Dir: "output"},
		Bench:  BenchConfig{Repeats: algo.DefaultRepeats},
		Stats:  StatsConfig{ZScoreThreshold: stats.DefaultZScoreThreshold},
		Report: ReportConfig{
			TopStations:   10,
			HistogramBins: report.DefaultHistogramBins,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: "citybike.log",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and CITYBIKE_* environment overrides, then validates the result. A
// missing file at path is not an error; an empty path skips the file
// layer entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("CITYBIKE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// FiguresDir returns the directory the chart-data series are written to.
func (c *Config) FiguresDir() string {
	return filepath.Join(c.Output.Dir, "figures")
}
