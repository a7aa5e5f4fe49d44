package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the smallest ray parameter above the geometry
	// threshold, or false on a miss
	Intersect(ray Ray) (float64, bool)

	// Normal returns the unit normal at a point on the surface. Orientation
	// follows the shape's own convention and is not guaranteed to face outward.
	Normal(point Vec3) Vec3

	// Material returns the shape's base surface
	Material() Surface
}

// Occluders is the part of a scene that a light needs to march a shadow ray
type Occluders interface {
	// Intersect returns the nearest shape along the ray and its distance
	Intersect(ray Ray) (Shape, float64, bool)

	// Threshold is the scene-wide numeric cutoff for negligible contributions
	Threshold() float64
}

// Light interface for light sources evaluated by the shader
type Light interface {
	// Color returns the light's color
	Color() Vec3

	// Shadow returns the light's attenuation at point and the unit vector
	// from point toward the light. The sampler supplies randomness for soft lights.
	Shadow(point Vec3, occluders Occluders, sampler Sampler) (float64, Vec3)
}

// Fidelity selects between the legacy shading/sampling behavior and the
// corrected one
type Fidelity int

const (
	// FidelityStrict scales the ambient term and the refracted contribution by
	// Kr and samples sub-pixel cells at their centers
	FidelityStrict Fidelity = iota

	// FidelityCorrected uses Ka for ambient, Kt for refraction and jittered
	// sub-pixel offsets
	FidelityCorrected
)

// String returns the flag spelling of the fidelity mode
func (f Fidelity) String() string {
	switch f {
	case FidelityCorrected:
		return "corrected"
	default:
		return "strict"
	}
}

// ParseFidelity converts a flag value into a Fidelity
func ParseFidelity(s string) (Fidelity, bool) {
	switch s {
	case "strict", "":
		return FidelityStrict, true
	case "corrected":
		return FidelityCorrected, true
	default:
		return FidelityStrict, false
	}
}
