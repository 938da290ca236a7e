package matern

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"

	"github.com/flywave/go-geo"
)

// Grid is a rectangular lattice of node coordinates. The z component of
// each coordinate carries the sampled field value once Fill has run.
//
// Nodes are stored north-up: the first Width entries are the top raster
// row, x ascending. Parameter fields, the covariance matrix and the
// sampled vector all share this one flattening order.
type Grid struct {
	Width       int
	Height      int
	Coordinates []vec3d.T
	Count       int
	box         *vec3d.Box
	srs         geo.Proj
}

func calculatePixelSize(width, height int, bbox vec2d.Rect) [2]float64 {
	return [2]float64{
		(bbox.Max[0] - bbox.Min[0]) / float64(width),
		(bbox.Max[1] - bbox.Min[1]) / float64(height),
	}
}

// NewGrid lays out width x height node coordinates over the referenced
// bounds.
func NewGrid(width, height int, georef *geo.GeoReference) *Grid {
	grid := &Grid{Width: width, Height: height, Count: width * height, srs: georef.GetSrs()}

	pixelSize := calculatePixelSize(width, height, georef.GetBBox())

	coords := make([]vec3d.T, 0, grid.Count)
	for y := grid.Height - 1; y >= 0; y-- {
		latitude := georef.GetOrigin()[1] + pixelSize[1]*float64(y)
		for x := 0; x < grid.Width; x++ {
			longitude := georef.GetOrigin()[0] + pixelSize[0]*float64(x)
			coords = append(coords, vec3d.T{longitude, latitude, 0})
		}
	}
	grid.Coordinates = coords
	return grid
}

// UnitGrid lays out width x height node coordinates over the unit
// square in EPSG:4326.
func UnitGrid(width, height int) *Grid {
	bounds := vec2d.Rect{Min: vec2d.T{0, 0}, Max: vec2d.T{1, 1}}
	return NewGrid(width, height, geo.NewGeoReference(bounds, epsg4326))
}

func (h *Grid) GetRect() vec2d.Rect {
	bbox := h.GetBBox()
	return vec2d.Rect{Min: vec2d.T{bbox.Min[0], bbox.Min[1]}, Max: vec2d.T{bbox.Max[0], bbox.Max[1]}}
}

func (h *Grid) GetBBox() vec3d.Box {
	if h.box == nil {
		r := vec3d.Box{Min: vec3d.MaxVal, Max: vec3d.MinVal}
		for i := range h.Coordinates {
			r.Extend(&h.Coordinates[i])
		}
		return r
	}
	return *h.box
}

func (h *Grid) Value(row, column int) float64 {
	return h.Coordinates[row*h.Width+column][2]
}

// Fill copies a sampled result into the node z values.
func (h *Grid) Fill(result *Result) {
	for i := range h.Coordinates {
		h.Coordinates[i][2] = result.Data[i]
	}
	h.box = nil
}

// GetTileData returns the node values in raster order with the tile
// geometry needed to georeference them.
func (h *Grid) GetTileData() ([]float64, [2]uint32, vec2d.Rect, geo.Proj) {
	tiledata := make([]float64, h.Count)
	for i := range h.Coordinates {
		tiledata[i] = h.Coordinates[i][2]
	}
	return tiledata, [2]uint32{uint32(h.Width), uint32(h.Height)}, h.GetRect(), h.srs
}
