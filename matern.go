package matern

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// distanceEpsilon is the separation below which a pair is treated as
// coincident. The Matérn formula evaluates K_nu at the edge of its
// domain as h -> 0; the product with h^nu stays bounded but the naive
// evaluation does not, so the limit value is substituted outright.
const distanceEpsilon = 1e-12

type localParams struct {
	variance   float64
	rangeParam float64
	angleRad   float64
	ratio      float64
}

// localAt averages the parameter values of nodes i and j arithmetically,
// giving the "local" model both nodes agree on.
func (f *ParameterFields) localAt(i, j int) localParams {
	return localParams{
		variance:   (f.Variance[i] + f.Variance[j]) / 2,
		rangeParam: (f.RangeParam[i] + f.RangeParam[j]) / 2,
		angleRad:   (f.AngleRad[i] + f.AngleRad[j]) / 2,
		ratio:      (f.Ratio[i] + f.Ratio[j]) / 2,
	}
}

// anisotropicDistance rotates the separation vector by -angle into the
// local anisotropy frame and stretches the minor (rotated-y) axis by
// the ratio. The angle names the major correlation axis; ratio >= 1, so
// correlation decays fastest across it.
func anisotropicDistance(delta vec2d.T, angleRad, ratio float64) float64 {
	rot := Rotator{Radians: -angleRad}
	d := rot.RotateVector(delta)
	return math.Sqrt(pow2(d[0]) + pow2(ratio*d[1]))
}

// maternCovariance evaluates the Matérn model at separation h.
//
//	C(h) = variance * 2^(1-nu)/Gamma(nu) * (sqrt(2 nu) h / range)^nu * K_nu(sqrt(2 nu) h / range)
//
// Smoothness nu = 0.5 reduces to the exponential model
// variance*exp(-h/range).
func maternCovariance(h, variance, rangeParam, smoothness float64) float64 {
	if h < distanceEpsilon {
		return variance
	}
	scaled := math.Sqrt(2*smoothness) * h / rangeParam
	if scaled > 705 {
		// K_nu underflows to zero there while h^nu can still overflow,
		// which would turn the product into NaN.
		return 0
	}
	constPart := variance * math.Pow(2, 1-smoothness) / math.Gamma(smoothness)
	return constPart * math.Pow(scaled, smoothness) * besselK(smoothness, scaled)
}

// pairCovariance is the covariance between grid nodes i and j under
// their locally averaged parameters. Symmetric in i and j.
func pairCovariance(grid *Grid, fields *ParameterFields, smoothness float64, i, j int) float64 {
	local := fields.localAt(i, j)
	delta := vec2d.T{
		grid.Coordinates[i][0] - grid.Coordinates[j][0],
		grid.Coordinates[i][1] - grid.Coordinates[j][1],
	}
	h := anisotropicDistance(delta, local.angleRad, local.ratio)
	return maternCovariance(h, local.variance, local.rangeParam, smoothness)
}
