package core

import (
	"math"
	"math/rand"
)

// Sampler provides random numbers for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// SampleOnUnitSphere maps two uniform numbers to a uniform direction on the unit sphere
func SampleOnUnitSphere(u, v float64) Vec3 {
	z := 1.0 - 2.0*u // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * v
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomUnitVector draws a uniformly distributed unit vector from the sampler
func RandomUnitVector(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}
