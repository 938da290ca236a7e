package matern

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/flywave/go-cog"
	"github.com/flywave/go-geo"
	"github.com/flywave/go-geom"
	"github.com/flywave/go-geom/general"
)

var epsg4326 geo.Proj

func init() {
	epsg4326 = geo.NewProj(4326)
}

// Options configures one FieldGenerator run. Empty output paths skip
// the corresponding writer; a nil Srs means EPSG:4326. A non-nil
// PixelSize overrides the configured grid dimensions, deriving them
// from the domain bounds.
type Options struct {
	Config    Config
	Srs       *string
	PixelSize *[2]float64
	Output    string // GeoTIFF path
	GeoJSON   string // point FeatureCollection path
	PNG       string // rendered preview path
}

// FieldGenerator runs the full pipeline: grid layout, parameter fields,
// covariance sampling, then the export collaborators. The exporters
// consume only the grid geometry and the value mapping; the sampler
// never sees them.
type FieldGenerator struct {
	config    Config
	srs       geo.Proj
	pixelSize *[2]float64
	sampler   *Sampler
	grid      *Grid
	fields    *ParameterFields
	output    string
	geojson   string
	png       string
}

func NewFieldGenerator(opts Options) *FieldGenerator {
	gen := &FieldGenerator{
		config:    opts.Config,
		pixelSize: opts.PixelSize,
		sampler:   NewSampler(opts.Config),
		output:    opts.Output,
		geojson:   opts.GeoJSON,
		png:       opts.PNG,
	}

	if opts.Srs != nil {
		gen.srs = geo.NewProj(*opts.Srs)
	} else {
		gen.srs = epsg4326
	}

	return gen
}

func (p *FieldGenerator) Process() (*Result, error) {
	cfg := p.config
	if p.pixelSize != nil {
		if p.pixelSize[0] <= 0 || p.pixelSize[1] <= 0 {
			return nil, fmt.Errorf("matern: pixel size must be positive, got %v", *p.pixelSize)
		}
		cfg.Width = int((cfg.Bounds.Max[0] - cfg.Bounds.Min[0]) / p.pixelSize[0])
		cfg.Height = int((cfg.Bounds.Max[1] - cfg.Bounds.Min[1]) / p.pixelSize[1])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p.grid = NewGrid(cfg.Width, cfg.Height, geo.NewGeoReference(cfg.Bounds, p.srs))

	fields, err := BuildParameterFields(p.grid, cfg)
	if err != nil {
		return nil, err
	}
	p.fields = fields

	result, err := p.sampler.Sample(p.grid, p.fields)
	if err != nil {
		return nil, err
	}
	p.grid.Fill(result)

	if p.output != "" {
		if err := p.writeRaster(); err != nil {
			return nil, err
		}
	}
	if p.geojson != "" {
		if err := p.writePoints(); err != nil {
			return nil, err
		}
	}
	if p.png != "" {
		if err := RenderPNG(result, p.png); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (p *FieldGenerator) writeRaster() error {
	tiledata, si, bbox, srs := p.grid.GetTileData()

	rect := image.Rect(0, 0, int(si[0]), int(si[1]))
	src := cog.NewSource(tiledata, &rect, cog.CTLZW)

	return cog.WriteTile(p.output, src, bbox, srs, si, nil)
}

// writePoints emits every node as a GeoJSON point feature carrying the
// sampled value, for consumers that want ground truth as scattered
// observations rather than a raster.
func (p *FieldGenerator) writePoints() error {
	fc := &geom.FeatureCollection{}
	for i := range p.grid.Coordinates {
		c := p.grid.Coordinates[i]
		fc.Features = append(fc.Features, &geom.Feature{
			Geometry:   general.NewPoint([]float64{c[0], c[1], c[2]}),
			Properties: map[string]interface{}{"value": c[2]},
		})
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(p.geojson, data, 0644)
}
