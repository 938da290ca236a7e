package matern

import (
	"math"

	mat2d "github.com/flywave/go3d/float64/mat2"
	vec2d "github.com/flywave/go3d/float64/vec2"
)

// Rotator rotates 2D vectors by a fixed angle, counterclockwise
// positive, measured from the +x axis.
type Rotator struct {
	Radians float64
}

func (r Rotator) RotateVector(v vec2d.T) vec2d.T {
	v2 := v
	mat := r.RotationMatrix()
	mat.TransformVec2(&v2)
	return v2
}

// RotationMatrix builds the rotation in mat2d's column layout: column 0
// is the image of the x axis, column 1 the image of the y axis.
func (r Rotator) RotationMatrix() (m mat2d.T) {
	c := math.Cos(r.Radians)
	s := math.Sin(r.Radians)

	m[0][0] = c
	m[0][1] = s
	m[1][0] = -s
	m[1][1] = c

	return m
}
