package renderer

import (
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of primary rays
	TotalRays      int           // Total number of rays including secondary rays
	AverageSamples float64       // Average samples per pixel
	MinSamples     int           // Minimum samples taken per pixel
	MaxSamplesUsed int           // Maximum samples actually used by any pixel
	MaxDepth       int           // Deepest recursion reached by any ray
	Duration       time.Duration // Wall time of the render
}

// addPixel records the samples used by one pixel
func (s *RenderStats) addPixel(samplesUsed int) {
	if s.TotalPixels == 0 || samplesUsed < s.MinSamples {
		s.MinSamples = samplesUsed
	}
	s.MaxSamplesUsed = max(s.MaxSamplesUsed, samplesUsed)
	s.TotalPixels++
	s.TotalSamples += samplesUsed
}

// Merge adds the statistics of another tile
func (s *RenderStats) Merge(other RenderStats) {
	if other.TotalPixels == 0 {
		return
	}
	if s.TotalPixels == 0 || other.MinSamples < s.MinSamples {
		s.MinSamples = other.MinSamples
	}
	s.MaxSamplesUsed = max(s.MaxSamplesUsed, other.MaxSamplesUsed)
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.TotalRays += other.TotalRays
	s.finalize()
}

// finalize calculates derived statistics
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates samples of a single pixel
type PixelStats struct {
	ColorAccum   core.Vec3 // RGB accumulator for the mean
	SquaredAccum float64   // Sum of c·c for the variance
	SampleCount  int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SquaredAccum += color.Dot(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the unbiased variance estimate of the samples, clamped at
// zero. It is undefined for fewer than two samples.
func (ps *PixelStats) Variance() (float64, bool) {
	if ps.SampleCount < 2 {
		return 0, false
	}
	n := float64(ps.SampleCount)
	mean := ps.GetColor()
	variance := math.Max(0, ps.SquaredAccum/n-mean.Dot(mean))
	return variance * n / (n - 1), true
}
