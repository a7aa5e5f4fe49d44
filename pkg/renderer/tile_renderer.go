package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raster maps pixel indices to image plane coordinates
type Raster struct {
	Width, Height         int
	HalfWidth, HalfHeight float64
}

// Pixel returns the footprint of pixel (i, j). Pixel (0, 0) is the top left
// corner of the image plane.
func (r Raster) Pixel(i, j int) PixelFootprint {
	pw := 2 * r.HalfWidth / float64(r.Width)
	ph := 2 * r.HalfHeight / float64(r.Height)
	return PixelFootprint{
		X:      -r.HalfWidth + float64(i)*pw,
		Y:      r.HalfHeight - float64(j)*ph,
		Width:  pw,
		Height: ph,
	}
}

// TileRenderer renders tiles into private pixel buffers. It only reads the
// scene, so one instance can serve many goroutines.
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	estimator  Estimator
	raster     Raster
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, estimator Estimator, raster Raster) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
		estimator:  estimator,
		raster:     raster,
	}
}

// RenderTile renders every pixel of the tile. The returned buffer holds the
// clipped colors in row-major order within the tile bounds.
func (tr *TileRenderer) RenderTile(tile *Tile) ([]core.Vec3, RenderStats) {
	bounds := tile.Bounds
	pixels := make([]core.Vec3, 0, bounds.Dx()*bounds.Dy())
	sampler := core.NewRandomSampler(tile.Random)

	var stats RenderStats
	trace := func(x, y float64) core.Vec3 {
		color, traceStats := tr.integrator.RayColor(tr.scene.CameraRay(x, y), tr.scene, sampler)
		stats.TotalRays += traceStats.Rays
		stats.MaxDepth = max(stats.MaxDepth, traceStats.MaxDepth)
		return color
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, samplesUsed := tr.estimator.Estimate(tr.raster.Pixel(i, j), trace, sampler)
			pixels = append(pixels, color)
			stats.addPixel(samplesUsed)
		}
	}

	stats.finalize()
	return pixels, stats
}
