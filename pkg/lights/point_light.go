package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitely small light radiating equally in all directions
type PointLight struct {
	color         core.Vec3
	Center        core.Vec3
	DistanceScale float64 // Distance at which the light has full strength
}

// NewPointLight creates a new point light
func NewPointLight(color, center core.Vec3, distanceScale float64) *PointLight {
	return &PointLight{
		color:         color,
		Center:        center,
		DistanceScale: distanceScale,
	}
}

// Color returns the light's color
func (pl *PointLight) Color() core.Vec3 {
	return pl.color
}

// Shadow implements core.Light
func (pl *PointLight) Shadow(point core.Vec3, occluders core.Occluders, sampler core.Sampler) (float64, core.Vec3) {
	toLight := pl.Center.Subtract(point)
	distance := toLight.Length()
	toLight = toLight.Divide(distance)

	attenuation := distanceFalloff(pl.DistanceScale, distance)
	return ShadowMarch(point, toLight, distance, attenuation, occluders), toLight
}
