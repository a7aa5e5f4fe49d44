package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Box represents a parallelepiped spanned by three edge vectors from a corner.
// The edges do not have to be axis aligned.
type Box struct {
	Corner     core.Vec3 // Corner the edges start from
	E1, E2, E3 core.Vec3 // Edge vectors
	Surface    core.Surface

	center  core.Vec3    // Center of the box
	normals [3]core.Vec3 // Unit normals of the three slab pairs
	d1      [3]float64   // Near plane offsets (n·p + d1 = 0)
	d2      [3]float64   // Far plane offsets, always greater than d1
}

// NewBox creates a new box with the given corner, edges, and surface
func NewBox(corner, e1, e2, e3 core.Vec3, surface core.Surface) *Box {
	b := &Box{
		Corner:  corner,
		E1:      e1,
		E2:      e2,
		E3:      e3,
		Surface: surface,
		center:  corner.Add(e1.Add(e2).Add(e3).Multiply(0.5)),
	}

	b.normals = [3]core.Vec3{
		e1.Cross(e2).Normalize(),
		e1.Cross(e3).Normalize(),
		e2.Cross(e3).Normalize(),
	}
	// Edge that separates each slab's two planes
	opposite := [3]core.Vec3{e3, e2, e1}

	for i := range b.normals {
		b.d1[i] = -b.normals[i].Dot(corner)
		b.d2[i] = -b.normals[i].Dot(corner.Add(opposite[i]))
		if b.d1[i] > b.d2[i] {
			b.d1[i] = -b.d1[i]
			b.d2[i] = -b.d2[i]
			b.normals[i] = b.normals[i].Negate()
		}
	}

	return b
}

// NewAxisAlignedBox creates a box spanning min to max
func NewAxisAlignedBox(minCorner, maxCorner core.Vec3, surface core.Surface) *Box {
	size := maxCorner.Subtract(minCorner)
	return NewBox(minCorner,
		core.NewVec3(size.X, 0, 0),
		core.NewVec3(0, size.Y, 0),
		core.NewVec3(0, 0, size.Z),
		surface)
}

// Intersect tests if a ray intersects with the box using the slab method
func (b *Box) Intersect(ray core.Ray) (float64, bool) {
	tNear := -infinity
	tFar := infinity

	for i, n := range b.normals {
		vd := ray.Direction.Dot(n)
		vo := ray.Origin.Dot(n)

		var t1, t2 float64
		switch {
		case vd > ParallelEpsilon:
			t1 = -(vo + b.d2[i]) / vd
			t2 = -(vo + b.d1[i]) / vd
		case vd < -ParallelEpsilon:
			t1 = -(vo + b.d1[i]) / vd
			t2 = -(vo + b.d2[i]) / vd
		default:
			// Parallel to this slab: the origin has to lie between its planes
			if vo < -b.d2[i] || vo > -b.d1[i] {
				return 0, false
			}
			continue
		}

		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			if t2 < GeometryThreshold {
				return 0, false
			}
			tFar = t2
		}
		if tNear > tFar {
			return 0, false
		}
	}

	// Origin inside the box: the exit is the nearest hit
	if tNear <= GeometryThreshold {
		return tFar, tFar > GeometryThreshold && tFar < infinity
	}
	return tNear, true
}

// Normal returns the normal of the face closest to point, pointing away from the center
func (b *Box) Normal(point core.Vec3) core.Vec3 {
	minDist := math.Inf(1)
	index := 0

	for i, n := range b.normals {
		d := point.Dot(n)
		dist := math.Min(math.Abs(d+b.d1[i]), math.Abs(d+b.d2[i]))
		if dist < minDist {
			minDist = dist
			index = i
		}
	}

	normal := b.normals[index]
	if point.Subtract(b.center).Dot(normal) < 0 {
		return normal.Negate()
	}
	return normal
}

// Material returns the box's surface
func (b *Box) Material() core.Surface {
	return b.Surface
}
