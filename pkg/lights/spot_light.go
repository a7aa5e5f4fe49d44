package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLight represents a point light restricted to a cone with a soft edge
type SpotLight struct {
	color            core.Vec3
	Center           core.Vec3 // Light position in world space
	Direction        core.Vec3 // Normalized direction the light points at
	ConeAngle        float64   // Cosine of the inner cone angle (full strength)
	EndConeAngle     float64   // Cosine of the outer cone angle (no light beyond)
	BeamDistribution int       // Exponent concentrating light toward the axis
	DistanceScale    float64
}

// NewSpotLight creates a spot light. The cone angles are given as cosines,
// so coneAngle must be at least endConeAngle.
func NewSpotLight(color, center, direction core.Vec3, coneAngle, endConeAngle float64, beamDistribution int, distanceScale float64) *SpotLight {
	return &SpotLight{
		color:            color,
		Center:           center,
		Direction:        direction.Normalize(),
		ConeAngle:        coneAngle,
		EndConeAngle:     endConeAngle,
		BeamDistribution: beamDistribution,
		DistanceScale:    distanceScale,
	}
}

// NewSpotLightDegrees creates a spot light aimed from center at target
// coneDegrees: half angle of the full strength cone
// endConeDegrees: half angle where the light fades out completely
func NewSpotLightDegrees(color, center, target core.Vec3, coneDegrees, endConeDegrees float64, beamDistribution int, distanceScale float64) *SpotLight {
	return NewSpotLight(color, center, target.Subtract(center),
		math.Cos(coneDegrees*math.Pi/180.0),
		math.Cos(endConeDegrees*math.Pi/180.0),
		beamDistribution, distanceScale)
}

// Color returns the light's color
func (sl *SpotLight) Color() core.Vec3 {
	return sl.color
}

// Shadow implements core.Light
func (sl *SpotLight) Shadow(point core.Vec3, occluders core.Occluders, sampler core.Sampler) (float64, core.Vec3) {
	toLight := sl.Center.Subtract(point)
	distance := toLight.Length()
	toLight = toLight.Divide(distance)

	spot := sl.falloff(-sl.Direction.Dot(toLight))
	if spot == 0 {
		return 0, toLight
	}

	attenuation := distanceFalloff(sl.DistanceScale, distance) * spot
	return ShadowMarch(point, toLight, distance, attenuation, occluders), toLight
}

// falloff returns the angular factor for the cosine between the spot axis
// and the direction from the light to the shaded point
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	// Outside the outer cone
	if cosAngle < sl.EndConeAngle {
		return 0
	}

	beam := math.Pow(cosAngle, float64(sl.BeamDistribution))

	// Inside the inner cone, including its boundary so equal angles give a hard edge
	if cosAngle >= sl.ConeAngle {
		return beam
	}

	// Linear ramp across the penumbra band
	return beam * (cosAngle - sl.EndConeAngle) / (sl.ConeAngle - sl.EndConeAngle)
}
