package matern

import (
	"math"
)

func degToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func pow2(x float64) float64 {
	return x * x
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}
