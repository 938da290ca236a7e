package matern

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// jet maps t in [0, 1] through a piecewise-linear approximation of the
// classic jet colormap (blue -> cyan -> yellow -> red).
func jet(t float64) color.RGBA {
	r := clamp01(1.5 - math.Abs(4*t-3))
	g := clamp01(1.5 - math.Abs(4*t-2))
	b := clamp01(1.5 - math.Abs(4*t-1))
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// RenderPNG writes the field min-max normalized through the colormap,
// first grid row at the top of the image.
func RenderPNG(result *Result, path string) error {
	min := floats.Min(result.Data)
	span := floats.Max(result.Data) - min
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, result.Width, result.Height))
	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			t := (result.Value(y, x) - min) / span
			img.SetRGBA(x, y, jet(t))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
