package report

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/battlesched/internal/fit"
	"github.com/specialistvlad/battlesched/internal/fsutil"
	"github.com/specialistvlad/battlesched/internal/harness"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Renderer draws the sweep and its fitted models.
type Renderer interface {
	Render(title string, samples []harness.Sample, result *fit.Result) error
}

// ChartRenderer writes a line chart to Path. The image format follows the
// file extension (png, svg, pdf, ...).
type ChartRenderer struct {
	Path   string
	Width  vg.Length
	Height vg.Length
}

// NewChartRenderer returns a renderer producing a 10x6 inch chart at path.
func NewChartRenderer(path string) *ChartRenderer {
	return &ChartRenderer{Path: path, Width: 10 * vg.Inch, Height: 6 * vg.Inch}
}

// Title returns the chart title for a subject name.
func Title(subjectName string) string {
	return fmt.Sprintf("Medición empírica de %s", subjectName)
}

// Render implements Renderer.
func (c *ChartRenderer) Render(title string, samples []harness.Sample, result *fit.Result) error {
	p, err := newPlot(title, samples, result)
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(filepath.Dir(c.Path)); err != nil {
		return err
	}
	if err := p.Save(c.Width, c.Height, c.Path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", c.Path, err)
	}
	return nil
}

func newPlot(title string, samples []harness.Sample, result *fit.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Tamaño de entrada (n)"
	p.Y.Label.Text = "Tiempo (s)"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	measured := make(plotter.XYs, len(samples))
	for i, s := range samples {
		measured[i].X = float64(s.Size)
		measured[i].Y = s.Seconds()
	}
	line, points, err := plotter.NewLinePoints(measured)
	if err != nil {
		return nil, fmt.Errorf("failed to plot measurements: %w", err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	points.Shape = plotutil.Shape(0)
	p.Add(line, points)
	p.Legend.Add("Datos empíricos", line, points)

	for i, m := range result.Models() {
		curve := make(plotter.XYs, len(samples))
		for j, s := range samples {
			curve[j].X = float64(s.Size)
			curve[j].Y = m.Predict(float64(s.Size))
		}
		l, err := plotter.NewLine(curve)
		if err != nil {
			return nil, fmt.Errorf("failed to plot %s fit: %w", m.Growth.Name, err)
		}
		l.Color = plotutil.Color(i + 1)
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(l)
		p.Legend.Add("Ajuste "+m.Growth.Label, l)
	}
	return p, nil
}
