package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/battlesched/internal/config"
	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/report"
	"github.com/specialistvlad/battlesched/internal/subject"
)

// App encapsulates the benchmark's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *config.Model
	subject  subject.Subject
	renderer report.Renderer
}

// Option customises an App. Tests use options to replace the subject or the
// chart renderer.
type Option func(*App)

// WithSubject replaces the subject derived from the configuration.
func WithSubject(s subject.Subject) Option {
	return func(a *App) { a.subject = s }
}

// WithRenderer replaces the chart renderer derived from the configuration.
// A nil renderer disables the chart.
func WithRenderer(r report.Renderer) Option {
	return func(a *App) { a.renderer = r }
}

// NewApp layers defaults, the configuration file (when cfg.ConfigPath is
// set) and cfg.Overrides, and builds the subject and renderer from the
// result. Results go to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings := Defaults()
	if cfg.ConfigPath != "" {
		fileModel, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		settings = settings.Merge(fileModel)
		logger.Debug("Configuration file loaded.", "path", cfg.ConfigPath)
	}
	settings = settings.Merge(cfg.Overrides)

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		settings: settings,
	}
	if cfg.InProcess {
		a.subject = subject.InProcess{}
	} else {
		a.subject = &subject.Process{Path: cfg.SubjectPath, Launcher: settings.Launcher}
	}
	if settings.Chart != "" {
		a.renderer = report.NewChartRenderer(chartPath(settings))
	}
	for _, opt := range opts {
		opt(a)
	}

	logger.Debug("App configured.",
		"subject", a.subject.Name(),
		"seed", settings.SeedOr(0),
		"sizes", len(settings.Sizes),
		"dataset_dir", settings.DatasetDir,
	)
	return a, nil
}

// Settings returns the merged configuration. This is primarily for testing.
func (a *App) Settings() *config.Model {
	return a.settings
}

// chartPath places a bare chart file name inside the dataset directory.
func chartPath(m *config.Model) string {
	if filepath.Base(m.Chart) == m.Chart {
		return filepath.Join(m.DatasetDir, m.Chart)
	}
	return m.Chart
}
