package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultMaxAdaptiveSamples caps the samples the adaptive estimator takes per pixel
const DefaultMaxAdaptiveSamples = 99

// PixelFootprint is a pixel's position and size on the image plane
type PixelFootprint struct {
	X, Y          float64 // Image plane position of the pixel
	Width, Height float64 // Pixel size on the image plane
}

// RayFunc traces the primary ray through image plane point (x, y) and returns its unclipped color
type RayFunc func(x, y float64) core.Vec3

// Estimator computes the color of one pixel from one or more primary rays.
// It returns the clipped color and the number of samples taken.
type Estimator interface {
	Estimate(pixel PixelFootprint, trace RayFunc, sampler core.Sampler) (core.Vec3, int)
	Name() string
}

// PointSampler casts one ray through the pixel position
type PointSampler struct{}

// Estimate implements Estimator
func (PointSampler) Estimate(pixel PixelFootprint, trace RayFunc, sampler core.Sampler) (core.Vec3, int) {
	return trace(pixel.X, pixel.Y).Clip(), 1
}

// Name implements Estimator
func (PointSampler) Name() string {
	return "point"
}

// gridSample casts one ray through cell (i, j) of an nx×ny grid centered on the pixel
func gridSample(pixel PixelFootprint, trace RayFunc, sampler core.Sampler, jitter bool, i, j, nx, ny int) core.Vec3 {
	subWidth := pixel.Width / float64(nx)
	subHeight := pixel.Height / float64(ny)
	x0 := pixel.X - 0.5*pixel.Width
	y0 := pixel.Y - 0.5*pixel.Height

	offX, offY := 0.5, 0.5
	if jitter {
		offX, offY = sampler.Get2D()
	}

	return trace(x0+subWidth*(float64(i)+offX), y0+subHeight*(float64(j)+offY))
}

// GridSampler averages one ray per cell of a fixed sub-pixel grid
type GridSampler struct {
	NX, NY int
	Jitter bool // Random offset inside each cell instead of the cell center
}

// Estimate implements Estimator
func (g *GridSampler) Estimate(pixel PixelFootprint, trace RayFunc, sampler core.Sampler) (core.Vec3, int) {
	var ps PixelStats
	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			ps.AddSample(gridSample(pixel, trace, sampler, g.Jitter, i, j, g.NX, g.NY))
		}
	}
	return ps.GetColor().Clip(), ps.SampleCount
}

// Name implements Estimator
func (g *GridSampler) Name() string {
	return fmt.Sprintf("grid %dx%d", g.NX, g.NY)
}

// AdaptiveSampler takes sub-pixel grid batches until the sample variance
// drops below Variance or MaxSamples samples have been taken
type AdaptiveSampler struct {
	NX, NY     int
	Variance   float64
	MaxSamples int
	Jitter     bool
}

// Estimate implements Estimator
func (a *AdaptiveSampler) Estimate(pixel PixelFootprint, trace RayFunc, sampler core.Sampler) (core.Vec3, int) {
	maxSamples := a.MaxSamples
	if maxSamples <= 0 {
		maxSamples = DefaultMaxAdaptiveSamples
	}

	var ps PixelStats
	for {
	batch:
		for i := 0; i < a.NX; i++ {
			for j := 0; j < a.NY; j++ {
				if ps.SampleCount >= maxSamples {
					break batch
				}
				ps.AddSample(gridSample(pixel, trace, sampler, a.Jitter, i, j, a.NX, a.NY))
			}
		}

		if ps.SampleCount >= maxSamples {
			break
		}
		if variance, ok := ps.Variance(); ok && variance < a.Variance {
			break
		}
	}

	return ps.GetColor().Clip(), ps.SampleCount
}

// Name implements Estimator
func (a *AdaptiveSampler) Name() string {
	return fmt.Sprintf("adaptive %dx%d (variance %g)", a.NX, a.NY, a.Variance)
}

// NewEstimator creates the estimator named by kind: "point", "grid" or "adaptive".
// Corrected fidelity jitters the sub-pixel offsets.
func NewEstimator(kind string, nx, ny int, variance float64, maxSamples int, fidelity core.Fidelity) (Estimator, error) {
	jitter := fidelity == core.FidelityCorrected

	switch kind {
	case "point":
		return PointSampler{}, nil
	case "grid", "adaptive":
		if nx <= 0 || ny <= 0 {
			return nil, fmt.Errorf("invalid sub-pixel grid %dx%d", nx, ny)
		}
		if kind == "grid" {
			return &GridSampler{NX: nx, NY: ny, Jitter: jitter}, nil
		}
		return &AdaptiveSampler{NX: nx, NY: ny, Variance: variance, MaxSamples: maxSamples, Jitter: jitter}, nil
	default:
		return nil, fmt.Errorf("unknown sampler: %s", kind)
	}
}
