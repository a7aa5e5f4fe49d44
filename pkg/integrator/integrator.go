package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the unclipped color seen along a primary ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) (core.Vec3, TraceStats)
}

// TraceStats reports the work done for one primary ray
type TraceStats struct {
	Rays     int // Rays cast, the primary ray included
	MaxDepth int // Deepest recursion level reached
}

// Config controls the integrator's shading behavior
type Config struct {
	Fidelity core.Fidelity
}

// DefaultConfig returns the default integrator configuration
func DefaultConfig() Config {
	return Config{
		Fidelity: core.FidelityStrict,
	}
}
