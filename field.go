package matern

// ParameterFields holds the four spatially varying model parameters,
// one value per grid node in grid flattening order. Immutable after
// construction.
//
// Angles are kept in unwrapped radians: pairwise averaging and the
// monotone-gradient property both need the raw linear values, and the
// anisotropy axis is unoriented anyway (theta and theta+pi describe the
// same metric).
type ParameterFields struct {
	Variance   []float64
	RangeParam []float64
	AngleRad   []float64
	Ratio      []float64
}

// BuildParameterFields interpolates every configured span linearly
// along the x axis: t = 0 at the westmost node column, t = 1 at the
// eastmost, independent of y. Variance, correlation range, anisotropy
// angle and ratio therefore all form a left-to-right gradient.
func BuildParameterFields(grid *Grid, cfg Config) (*ParameterFields, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bbox := grid.GetBBox()
	xmin := bbox.Min[0]
	span := bbox.Max[0] - xmin

	fields := &ParameterFields{
		Variance:   make([]float64, grid.Count),
		RangeParam: make([]float64, grid.Count),
		AngleRad:   make([]float64, grid.Count),
		Ratio:      make([]float64, grid.Count),
	}
	for i := range grid.Coordinates {
		t := (grid.Coordinates[i][0] - xmin) / span
		fields.Variance[i] = cfg.Variance.At(t)
		fields.RangeParam[i] = cfg.RangeParam.At(t)
		fields.AngleRad[i] = degToRad(cfg.AngleDeg.At(t))
		fields.Ratio[i] = cfg.Ratio.At(t)
	}
	return fields, nil
}
