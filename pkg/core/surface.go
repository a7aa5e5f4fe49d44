package core

// Medium describes the substance a ray travels through
type Medium struct {
	Refraction float64 // Index of refraction
	Absorption float64 // Absorption coefficient (carried, not used by the tracer)
}

// Air is vacuum/air with a refractive index of 1
var Air = Medium{Refraction: 1.0}

// Glass is a dense transparent medium used for refraction
var Glass = Medium{Refraction: 1.5}

// Common colors
var (
	Black  = NewVec3(0, 0, 0)
	White  = NewVec3(1, 1, 1)
	Red    = NewVec3(1, 0, 0)
	Green  = NewVec3(0, 1, 0)
	Blue   = NewVec3(0, 0, 1)
	Yellow = NewVec3(1, 1, 0)
)

// Surface holds the flat per-surface material coefficients used by Phong
// shading plus the normal at the point being shaded.
type Surface struct {
	Ka     float64 // Ambient coefficient
	Kd     float64 // Diffuse coefficient
	Ks     float64 // Specular coefficient
	Kr     float64 // Reflection coefficient
	Kt     float64 // Transmission coefficient
	P      int     // Phong exponent
	Color  Vec3    // Base color
	Medium Medium  // Medium behind the surface
	Normal Vec3    // Local normal, filled in by FindTexture
}

// FindTexture returns a copy of the shape's material with the normal at
// point filled in. This is the only per-point material variation.
func FindTexture(shape Shape, point Vec3) Surface {
	texture := shape.Material()
	texture.Normal = shape.Normal(point)
	return texture
}
