package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder represents a finite cylinder closed by two flat caps
type Cylinder struct {
	Base    core.Vec3 // Center of the base cap
	Axis    core.Vec3 // Vector from the base cap center to the top cap center
	Radius  float64
	Surface core.Surface

	// Cached derived values
	e1, e2   core.Vec3 // Basis perpendicular to the axis, both scaled to Radius
	d1, d2   float64   // Base and top cap plane offsets (p·Axis + d = 0)
	length   float64   // |Axis|
	lengthSq float64   // |Axis|²
	radiusSq float64
	radius4  float64
}

// NewCylinder creates a new capped cylinder
func NewCylinder(base, axis core.Vec3, radius float64, surface core.Surface) *Cylinder {
	// Any vector perpendicular to the axis, avoiding the degenerate choice
	var e1 core.Vec3
	if math.Abs(axis.X)+math.Abs(axis.Y) > math.Abs(axis.Z) {
		e1 = core.NewVec3(axis.Y, -axis.X, 0)
	} else {
		e1 = core.NewVec3(0, axis.Z, -axis.Y)
	}
	e1 = e1.Normalize().Multiply(radius)
	e2 := axis.Cross(e1).Normalize().Multiply(radius)

	lengthSq := axis.LengthSquared()
	radiusSq := radius * radius

	return &Cylinder{
		Base:     base,
		Axis:     axis,
		Radius:   radius,
		Surface:  surface,
		e1:       e1,
		e2:       e2,
		d1:       -base.Dot(axis),
		d2:       -base.Add(axis).Dot(axis),
		length:   math.Sqrt(lengthSq),
		lengthSq: lengthSq,
		radiusSq: radiusSq,
		radius4:  radiusSq * radiusSq,
	}
}

// NewCylinderBetween creates a capped cylinder from the base center to the top center
func NewCylinderBetween(baseCenter, topCenter core.Vec3, radius float64, surface core.Surface) *Cylinder {
	return NewCylinder(baseCenter, topCenter.Subtract(baseCenter), radius, surface)
}

// Intersect tests if a ray intersects with the cylinder or one of its caps
func (c *Cylinder) Intersect(ray core.Ray) (float64, bool) {
	l := ray.Origin.Subtract(c.Base)

	// Ray expressed in the (e1, e2, axis) frame
	u0 := l.Dot(c.e1)
	u1 := ray.Direction.Dot(c.e1)
	v0 := l.Dot(c.e2)
	v1 := ray.Direction.Dot(c.e2)
	l0 := l.Dot(c.Axis)
	l1 := ray.Direction.Dot(c.Axis)

	a := u1*u1 + v1*v1
	b := u0*u1 + v0*v1
	cc := u0*u0 + v0*v0 - c.radius4

	// Ray parallel to the axis can only enter through the caps
	if a < 1e-12 {
		if cc >= 0 {
			return 0, false
		}
		return c.intersectCapsAlongAxis(ray, l1)
	}

	d := b*b - a*cc
	if d <= 0 {
		return 0, false
	}
	d = math.Sqrt(d)

	t1 := c.clipToCaps(ray, l0, l1, (-b-d)/a)
	t2 := c.clipToCaps(ray, l0, l1, (-b+d)/a)

	if t1 > GeometryThreshold {
		return t1, true
	}
	return t2, t2 > GeometryThreshold
}

// clipToCaps keeps a side hit whose axial parameter is inside [0, 1]. A hit
// beyond either end is replaced by the hit on that end's cap, or -1 when the
// ray misses the cap disk.
func (c *Cylinder) clipToCaps(ray core.Ray, l0, l1, t float64) float64 {
	s := (l0 + t*l1) / c.lengthSq
	if s >= 0 && s <= 1 {
		return t
	}

	// Perpendicular to the axis: the cap planes are never crossed
	if math.Abs(l1) <= ParallelEpsilon {
		return -1
	}

	d, center := c.d1, c.Base
	if s > 1 {
		d, center = c.d2, c.Base.Add(c.Axis)
	}
	return c.capHit(ray, l1, d, center)
}

// capHit intersects the cap plane and validates the point lies inside its disk
func (c *Cylinder) capHit(ray core.Ray, l1, d float64, center core.Vec3) float64 {
	t := -(ray.Origin.Dot(c.Axis) + d) / l1
	p := ray.At(t).Subtract(center)
	if p.LengthSquared() >= c.radiusSq {
		return -1
	}
	return t
}

// intersectCapsAlongAxis handles rays running inside the cylinder parallel to its axis
func (c *Cylinder) intersectCapsAlongAxis(ray core.Ray, l1 float64) (float64, bool) {
	if math.Abs(l1) <= ParallelEpsilon {
		return 0, false
	}
	tBase := c.capHit(ray, l1, c.d1, c.Base)
	tTop := c.capHit(ray, l1, c.d2, c.Base.Add(c.Axis))

	t1, t2 := math.Min(tBase, tTop), math.Max(tBase, tTop)
	if t1 > GeometryThreshold {
		return t1, true
	}
	return t2, t2 > GeometryThreshold
}

// Normal returns the cap normal on the caps and the radial normal on the side
func (c *Cylinder) Normal(point core.Vec3) core.Vec3 {
	s := point.Subtract(c.Base).Dot(c.Axis) / c.lengthSq

	switch {
	case s < ParallelEpsilon:
		return c.Axis.Divide(-c.length)
	case s > 1-ParallelEpsilon:
		return c.Axis.Divide(c.length)
	default:
		return point.Subtract(c.Base).Subtract(c.Axis.Multiply(s)).Normalize()
	}
}

// Material returns the cylinder's surface
func (c *Cylinder) Material() core.Surface {
	return c.Surface
}
