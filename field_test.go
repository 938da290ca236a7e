package matern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

func unitBounds() vec2d.Rect {
	return vec2d.Rect{Min: vec2d.T{0, 0}, Max: vec2d.T{1, 1}}
}

func gradientConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		Bounds:     unitBounds(),
		Variance:   Span{0.5, 3.0},
		RangeParam: Span{0.05, 0.5},
		AngleDeg:   Span{0, 90},
		Ratio:      Span{1, 3},
		Smoothness: 1.5,
		Seed:       42,
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Width = 1 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"degenerate bounds", func(c *Config) { c.Bounds.Max = c.Bounds.Min }},
		{"inverted span", func(c *Config) { c.Variance = Span{2, 1} }},
		{"zero variance", func(c *Config) { c.Variance = Span{0, 1} }},
		{"zero range", func(c *Config) { c.RangeParam = Span{0, 0.5} }},
		{"ratio below one", func(c *Config) { c.Ratio = Span{0.5, 2} }},
		{"zero smoothness", func(c *Config) { c.Smoothness = 0 }},
		{"negative nugget", func(c *Config) { c.Nugget = -1e-6 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := gradientConfig(10, 10)
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, gradientConfig(10, 10).Validate())
	require.NoError(t, DefaultConfig().Validate())
}

func TestBuildParameterFieldsRejectsInvalidConfig(t *testing.T) {
	cfg := gradientConfig(10, 10)
	cfg.Smoothness = -1
	_, err := BuildParameterFields(UnitGrid(10, 10), cfg)
	require.Error(t, err)
}

func TestParameterFieldsEndpoints(t *testing.T) {
	cfg := gradientConfig(8, 5)
	grid := UnitGrid(8, 5)
	fields, err := BuildParameterFields(grid, cfg)
	require.NoError(t, err)

	for row := 0; row < 5; row++ {
		west := row * 8
		east := row*8 + 7
		require.Equal(t, 0.5, fields.Variance[west])
		require.InDelta(t, 3.0, fields.Variance[east], 1e-15)
		require.Equal(t, 0.05, fields.RangeParam[west])
		require.InDelta(t, 0.5, fields.RangeParam[east], 1e-15)
		require.Equal(t, 0.0, fields.AngleRad[west])
		require.InDelta(t, math.Pi/2, fields.AngleRad[east], 1e-12)
		require.Equal(t, 1.0, fields.Ratio[west])
		require.InDelta(t, 3.0, fields.Ratio[east], 1e-15)
	}
}

func TestParameterFieldsMonotoneAlongX(t *testing.T) {
	cfg := gradientConfig(12, 6)
	grid := UnitGrid(12, 6)
	fields, err := BuildParameterFields(grid, cfg)
	require.NoError(t, err)

	for row := 0; row < 6; row++ {
		for col := 1; col < 12; col++ {
			i := row*12 + col
			require.Greater(t, fields.Variance[i], fields.Variance[i-1])
			require.Greater(t, fields.RangeParam[i], fields.RangeParam[i-1])
			require.Greater(t, fields.AngleRad[i], fields.AngleRad[i-1])
			require.Greater(t, fields.Ratio[i], fields.Ratio[i-1])
		}
	}
}

func TestParameterFieldsIndependentOfY(t *testing.T) {
	cfg := gradientConfig(9, 7)
	grid := UnitGrid(9, 7)
	fields, err := BuildParameterFields(grid, cfg)
	require.NoError(t, err)

	for col := 0; col < 9; col++ {
		for row := 1; row < 7; row++ {
			i := row*9 + col
			require.Equal(t, fields.Variance[col], fields.Variance[i])
			require.Equal(t, fields.RangeParam[col], fields.RangeParam[i])
			require.Equal(t, fields.AngleRad[col], fields.AngleRad[i])
			require.Equal(t, fields.Ratio[col], fields.Ratio[i])
		}
	}
}

func TestParameterFieldsStationary(t *testing.T) {
	cfg := gradientConfig(6, 6)
	cfg.Variance = Span{1, 1}
	cfg.RangeParam = Span{0.2, 0.2}
	cfg.AngleDeg = Span{0, 0}
	cfg.Ratio = Span{1, 1}

	fields, err := BuildParameterFields(UnitGrid(6, 6), cfg)
	require.NoError(t, err)
	for i := 0; i < 36; i++ {
		require.Equal(t, 1.0, fields.Variance[i])
		require.Equal(t, 0.2, fields.RangeParam[i])
		require.Equal(t, 0.0, fields.AngleRad[i])
		require.Equal(t, 1.0, fields.Ratio[i])
	}
}
