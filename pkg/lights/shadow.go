package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// ShadowMarch walks a shadow ray from point toward a light that is distance
// away, multiplying attenuation by the transmission of every occluder it
// crosses. toLight must be unit length. Returns 0 as soon as an opaque
// occluder is hit or the attenuation becomes negligible.
func ShadowMarch(point, toLight core.Vec3, distance, attenuation float64, occluders core.Occluders) float64 {
	threshold := occluders.Threshold()
	ray := core.NewRay(point, toLight)

	for {
		occluder, t, hit := occluders.Intersect(ray)
		if !hit || t >= distance {
			return attenuation
		}

		ray.Origin = ray.At(t)
		kt := core.FindTexture(occluder, ray.Origin).Kt
		if kt < threshold {
			return 0
		}

		attenuation *= kt
		if attenuation < threshold {
			return 0
		}

		distance -= t
	}
}

// distanceFalloff returns the squared inverse distance attenuation shared by all lights
func distanceFalloff(distanceScale, distance float64) float64 {
	a := distanceScale / distance
	return a * a
}
