package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane satisfying Normal·p + Distance = 0
type Plane struct {
	normal   core.Vec3 // Unit plane normal
	Distance float64   // Signed distance term of the plane equation
	Surface  core.Surface
}

// NewPlane creates a plane from a unit normal and the distance term
func NewPlane(normal core.Vec3, distance float64, surface core.Surface) *Plane {
	return &Plane{
		normal:   normal,
		Distance: distance,
		Surface:  surface,
	}
}

// NewPlaneFromABCD creates the plane ax + by + cz + d = 0, normalizing the coefficients
func NewPlaneFromABCD(a, b, c, d float64, surface core.Surface) *Plane {
	normal := core.NewVec3(a, b, c)
	length := normal.Length()
	return NewPlane(normal.Divide(length), d/length, surface)
}

// NewPlaneThroughPoint creates a plane with the given normal passing through point
func NewPlaneThroughPoint(point, normal core.Vec3, surface core.Surface) *Plane {
	n := normal.Normalize()
	return NewPlane(n, -n.Dot(point), surface)
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	vd := p.normal.Dot(ray.Direction)

	// Nearly parallel rays would divide by a tiny denominator
	if math.Abs(vd) < ParallelEpsilon {
		return 0, false
	}

	t := -(p.normal.Dot(ray.Origin) + p.Distance) / vd
	return t, t > GeometryThreshold
}

// Normal returns the plane normal, the same everywhere
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.normal
}

// Material returns the plane's surface
func (p *Plane) Material() core.Surface {
	return p.Surface
}
