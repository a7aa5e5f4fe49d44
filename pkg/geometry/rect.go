package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Rect represents a parallelogram defined by a corner and two edge vectors
type Rect struct {
	Corner  core.Vec3 // One corner of the rectangle
	SideA   core.Vec3 // First edge vector
	SideB   core.Vec3 // Second edge vector
	Surface core.Surface

	normal core.Vec3 // Unit normal (SideA × SideB)
	ku, kv core.Vec3 // Dual basis projecting a point onto (u, v)
	u0, v0 float64   // Projection offsets of the corner
}

// NewRect creates a new rectangle from a corner point and two edge vectors
func NewRect(corner, sideA, sideB core.Vec3, surface core.Surface) *Rect {
	// Invert the 2x2 Gram matrix of the edges to get the dual basis
	sAA := sideA.LengthSquared()
	sAB := sideA.Dot(sideB)
	sBB := sideB.LengthSquared()
	det := sAA*sBB - sAB*sAB

	ku := sideA.Multiply(sBB).Subtract(sideB.Multiply(sAB)).Divide(det)
	kv := sideB.Multiply(sAA).Subtract(sideA.Multiply(sAB)).Divide(det)

	return &Rect{
		Corner:  corner,
		SideA:   sideA,
		SideB:   sideB,
		Surface: surface,
		normal:  sideA.Cross(sideB).Normalize(),
		ku:      ku,
		kv:      kv,
		u0:      -corner.Dot(ku),
		v0:      -corner.Dot(kv),
	}
}

// IntersectUV intersects the ray with the rectangle's plane and returns the
// ray parameter together with the hit point's (u, v) coordinates in the edge basis
func (r *Rect) IntersectUV(ray core.Ray) (t, u, v float64, ok bool) {
	vd := r.normal.Dot(ray.Direction)
	if math.Abs(vd) < ParallelEpsilon {
		return 0, 0, 0, false
	}

	t = r.Corner.Subtract(ray.Origin).Dot(r.normal) / vd
	if t < GeometryThreshold {
		return 0, 0, 0, false
	}

	p := ray.At(t)
	u = r.u0 + p.Dot(r.ku)
	v = r.v0 + p.Dot(r.kv)
	return t, u, v, true
}

// Intersect tests if a ray intersects with the rectangle
func (r *Rect) Intersect(ray core.Ray) (float64, bool) {
	t, u, v, ok := r.IntersectUV(ray)
	if !ok {
		return 0, false
	}
	return t, u > 0 && v > 0 && u < 1 && v < 1
}

// Normal returns the rectangle's normal
func (r *Rect) Normal(point core.Vec3) core.Vec3 {
	return r.normal
}

// Material returns the rectangle's surface
func (r *Rect) Material() core.Surface {
	return r.Surface
}
