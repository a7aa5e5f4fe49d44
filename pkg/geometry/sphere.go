package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Surface  core.Surface
	radiusSq float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface core.Surface) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Surface:  surface,
		radiusSq: radius * radius,
	}
}

// Intersect tests if a ray intersects with the sphere.
// The ray direction is expected to be unit length.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(ray.Origin)

	// Projection of the center onto the ray
	tca := l.Dot(ray.Direction)

	// Squared half chord length
	t2hc := s.radiusSq - l.LengthSquared() + tca*tca
	if t2hc < 0 {
		return 0, false
	}
	t2hc = math.Sqrt(t2hc)

	// When the origin is inside the sphere the near root is behind it,
	// so start from the far root
	var t, other float64
	if tca < t2hc {
		t, other = tca+t2hc, tca-t2hc
	} else {
		t, other = tca-t2hc, tca+t2hc
	}

	// A root at the origin is the surface we are leaving
	if math.Abs(t) < GeometryThreshold {
		t = other
	}

	return t, t > GeometryThreshold
}

// Normal returns the outward normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}

// Material returns the sphere's surface
func (s *Sphere) Material() core.Surface {
	return s.Surface
}
