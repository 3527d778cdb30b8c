package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/fit"
	"github.com/specialistvlad/battlesched/internal/harness"
	"github.com/specialistvlad/battlesched/internal/report"
)

// Run executes the sweep, fits both growth models, renders the chart and
// prints the fitted coefficients.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	seed := a.settings.SeedOr(harness.DefaultSeed)
	exp := &harness.Experiment{
		Subject:    a.subject,
		Sizes:      a.settings.Sizes,
		Seed:       seed,
		DatasetDir: a.settings.DatasetDir,
		Out:        a.outW,
	}
	a.logger.Info("🚀 Starting sweep.", "subject", a.subject.Name(), "sizes", len(exp.Sizes))
	samples, err := exp.Run(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	result, err := fit.Fit(harness.Sizes(samples), harness.Timings(samples))
	if err != nil {
		return fmt.Errorf("failed to fit growth models: %w", err)
	}
	a.logger.Debug("Growth models fitted.", "best", result.Best().Growth.Name,
		"linear_rss", result.Linear.RSS, "nlogn_rss", result.NLogN.RSS)

	if a.renderer != nil {
		if err := a.renderer.Render(report.Title(a.subject.Name()), samples, result); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		if c, ok := a.renderer.(*report.ChartRenderer); ok {
			a.logger.Info("📈 Chart written.", "path", c.Path)
		}
	}

	if err := report.PrintCoefficients(a.outW, result); err != nil {
		return err
	}

	if a.settings.Report != "" {
		rr := report.NewRunReport(a.subject.Name(), seed, samples, result)
		if err := report.WriteRunReport(a.settings.Report, rr); err != nil {
			return err
		}
		a.logger.Info("Run report written.", "path", a.settings.Report)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
