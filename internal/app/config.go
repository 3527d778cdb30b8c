package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/battlesched/internal/config"
	"github.com/specialistvlad/battlesched/internal/harness"
)

// Config holds everything needed to run a benchmark sweep.
type Config struct {
	SubjectPath string // program under test
	ConfigPath  string // optional .hcl file or directory
	InProcess   bool   // time the built-in scheduler instead of SubjectPath

	LogFormat string
	LogLevel  string

	// Overrides take precedence over the configuration file.
	Overrides *config.Model
}

// SchedulerConfig holds the settings of the scheduler command.
type SchedulerConfig struct {
	DatasetPath string
	Verify      bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in logging defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SubjectPath == "" && !cfg.InProcess {
		return nil, errors.New("SubjectPath is a required configuration field and cannot be empty")
	}
	if err := normalizeLogging(&cfg.LogLevel, &cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewSchedulerConfig validates cfg and fills in logging defaults.
func NewSchedulerConfig(cfg SchedulerConfig) (*SchedulerConfig, error) {
	if cfg.DatasetPath == "" {
		return nil, errors.New("DatasetPath is a required configuration field and cannot be empty")
	}
	if err := normalizeLogging(&cfg.LogLevel, &cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalizeLogging(level, format *string) error {
	if *level == "" {
		*level = "info"
	}
	if *format == "" {
		*format = "text"
	}
	if _, err := parseLevel(*level); err != nil {
		return err
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", *format)
	}
	return nil
}

// Defaults is the lowest-priority configuration layer.
func Defaults() *config.Model {
	return &config.Model{
		Seed:       config.Int64(harness.DefaultSeed),
		DatasetDir: harness.DefaultDatasetDir,
		Sizes:      harness.DefaultSizes(),
		Chart:      "benchmark.png",
	}
}
