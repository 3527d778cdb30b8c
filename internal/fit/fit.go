// Package fit regresses measured run times against theoretical growth
// curves. Each curve has the form a*f(n) + b; fitting minimises the sum of
// squared residuals over the whole series.
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrLengthMismatch = errors.New("sizes and timings differ in length")
	ErrTooFewSamples  = errors.New("at least two distinct sizes are required")
)

// Growth is the size-dependent term f(n) of a model a*f(n) + b.
type Growth struct {
	Name  string
	Label string
	F     func(n float64) float64
}

var (
	// Linear is O(n).
	Linear = Growth{Name: "linear", Label: "O(n)", F: func(n float64) float64 { return n }}
	// NLogN is O(n log n) with a base-2 logarithm.
	NLogN = Growth{Name: "nlogn", Label: "O(n log n)", F: func(n float64) float64 { return n * math.Log2(n) }}
)

// Coefficients of a*f(n) + b.
type Coefficients struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// Model is a growth curve fitted to a series.
type Model struct {
	Growth Growth
	Coefficients
	RSS      float64 // residual sum of squares
	RSquared float64
}

// Predict evaluates the fitted curve at n.
func (m Model) Predict(n float64) float64 {
	return m.A*m.Growth.F(n) + m.B
}

// Result holds the fit of every candidate model.
type Result struct {
	Linear Model
	NLogN  Model
}

// Models returns the fitted models in display order.
func (r *Result) Models() []Model {
	return []Model{r.Linear, r.NLogN}
}

// Best returns the model with the smallest residual sum of squares.
func (r *Result) Best() Model {
	if r.NLogN.RSS < r.Linear.RSS {
		return r.NLogN
	}
	return r.Linear
}

// Fit regresses timings (seconds) on sizes for both candidate models.
func Fit(sizes []int, timings []float64) (*Result, error) {
	if len(sizes) != len(timings) {
		return nil, fmt.Errorf("%w: %d sizes, %d timings", ErrLengthMismatch, len(sizes), len(timings))
	}
	if distinct(sizes) < 2 {
		return nil, ErrTooFewSamples
	}

	linear, err := FitGrowth(Linear, sizes, timings)
	if err != nil {
		return nil, err
	}
	nlogn, err := FitGrowth(NLogN, sizes, timings)
	if err != nil {
		return nil, err
	}
	return &Result{Linear: linear, NLogN: nlogn}, nil
}

// FitGrowth fits a single growth curve. a*f(n) + b is linear in a and b, so
// ordinary least squares on the feature f(n) is the exact minimiser.
func FitGrowth(g Growth, sizes []int, timings []float64) (Model, error) {
	xs := make([]float64, len(sizes))
	for i, n := range sizes {
		if n <= 0 {
			return Model{}, fmt.Errorf("size must be positive, got %d", n)
		}
		xs[i] = g.F(float64(n))
	}

	b, a := stat.LinearRegression(xs, timings, nil, false)
	m := Model{Growth: g, Coefficients: Coefficients{A: a, B: b}}
	for i, x := range xs {
		r := timings[i] - (a*x + b)
		m.RSS += r * r
	}
	m.RSquared = stat.RSquared(xs, timings, nil, b, a)
	return m, nil
}

func distinct(sizes []int) int {
	seen := make(map[int]struct{}, len(sizes))
	for _, n := range sizes {
		seen[n] = struct{}{}
	}
	return len(seen)
}
