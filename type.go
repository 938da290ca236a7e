package matern

import (
	"fmt"
	"time"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// Span is a (min, max) endpoint pair for a spatially varying parameter.
// Equal endpoints make the parameter stationary.
type Span [2]float64

func (s Span) Min() float64 { return s[0] }

func (s Span) Max() float64 { return s[1] }

// At linearly interpolates the span at t in [0, 1].
func (s Span) At(t float64) float64 {
	return lerp(s[0], s[1], t)
}

type Config struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Bounds vec2d.Rect `json:"bounds"`

	Variance   Span `json:"variance"`
	RangeParam Span `json:"rangeParam"`
	AngleDeg   Span `json:"angleDeg"`
	Ratio      Span `json:"ratio"`

	Smoothness float64 `json:"smoothness"`
	Nugget     float64 `json:"nugget"`
	Seed       uint64  `json:"seed"`
}

// DefaultConfig covers the unit square with moderately non-stationary,
// moderately anisotropic parameters.
func DefaultConfig() Config {
	return Config{
		Width:      64,
		Height:     64,
		Bounds:     vec2d.Rect{Min: vec2d.T{0, 0}, Max: vec2d.T{1, 1}},
		Variance:   Span{0.5, 3.0},
		RangeParam: Span{0.05, 0.5},
		AngleDeg:   Span{-30, 60},
		Ratio:      Span{1.5, 3.0},
		Smoothness: 1.5,
		Nugget:     1e-6,
		Seed:       42,
	}
}

// Validate rejects configurations the model cannot accept. Values are
// never clamped.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("matern: grid must be at least 2x2 samples, got %dx%d", c.Width, c.Height)
	}
	if c.Bounds.Max[0] <= c.Bounds.Min[0] || c.Bounds.Max[1] <= c.Bounds.Min[1] {
		return fmt.Errorf("matern: degenerate domain bounds %v", c.Bounds)
	}
	for _, s := range []struct {
		name string
		span Span
	}{
		{"variance", c.Variance},
		{"range", c.RangeParam},
		{"angle", c.AngleDeg},
		{"ratio", c.Ratio},
	} {
		if s.span[0] > s.span[1] {
			return fmt.Errorf("matern: %s span min %g exceeds max %g", s.name, s.span[0], s.span[1])
		}
	}
	if c.Variance.Min() <= 0 {
		return fmt.Errorf("matern: variance must be positive, got min %g", c.Variance.Min())
	}
	if c.RangeParam.Min() <= 0 {
		return fmt.Errorf("matern: range parameter must be positive, got min %g", c.RangeParam.Min())
	}
	if c.Ratio.Min() < 1 {
		return fmt.Errorf("matern: anisotropy ratio must be >= 1, got min %g", c.Ratio.Min())
	}
	if c.Smoothness <= 0 {
		return fmt.Errorf("matern: smoothness must be positive, got %g", c.Smoothness)
	}
	if c.Nugget < 0 {
		return fmt.Errorf("matern: nugget must be non-negative, got %g", c.Nugget)
	}
	return nil
}

// Result is one sampled realization of the random field, flattened in
// grid order.
type Result struct {
	Data   []float64 `json:"data"`
	Width  int       `json:"width"`
	Height int       `json:"height"`

	// UsedFallback is set when the Cholesky factorization failed and the
	// field was drawn from the eigenvalue-clipped approximate factor.
	UsedFallback bool `json:"usedFallback"`

	// Wall-clock cost of the two dominant phases, the O(N²) matrix
	// assembly and the O(N³) factorization.
	AssemblyTime      time.Duration `json:"assemblyTime"`
	FactorizationTime time.Duration `json:"factorizationTime"`
}

func (r *Result) Value(row, column int) float64 {
	return r.Data[row*r.Width+column]
}
