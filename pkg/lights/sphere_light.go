package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// SphereLight is a soft light. Every shadow query aims at a random point of a
// sphere around the center, so averaging many samples gives a penumbra.
type SphereLight struct {
	color         core.Vec3
	Center        core.Vec3
	Radius        float64
	DistanceScale float64
}

// NewSphereLight creates a new soft spherical light
func NewSphereLight(color, center core.Vec3, radius, distanceScale float64) *SphereLight {
	return &SphereLight{
		color:         color,
		Center:        center,
		Radius:        radius,
		DistanceScale: distanceScale,
	}
}

// Color returns the light's color
func (sl *SphereLight) Color() core.Vec3 {
	return sl.color
}

// Shadow implements core.Light. The target point is jittered with the sampler.
func (sl *SphereLight) Shadow(point core.Vec3, occluders core.Occluders, sampler core.Sampler) (float64, core.Vec3) {
	target := sl.Center.Add(core.RandomUnitVector(sampler).Multiply(sl.Radius))

	toLight := target.Subtract(point)
	distance := toLight.Length()
	toLight = toLight.Divide(distance)

	attenuation := distanceFalloff(sl.DistanceScale, distance)
	return ShadowMarch(point, toLight, distance, attenuation, occluders), toLight
}
