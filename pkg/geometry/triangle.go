package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents the triangle (corner, corner+sideA, corner+sideB).
// It reuses the rectangle's (u, v) projection with a half-space test.
type Triangle struct {
	rect *Rect
}

// NewTriangle creates a new triangle from a corner and two edge vectors
func NewTriangle(corner, sideA, sideB core.Vec3, surface core.Surface) *Triangle {
	return &Triangle{rect: NewRect(corner, sideA, sideB, surface)}
}

// NewTriangleFromVertices creates a new triangle from three vertices
func NewTriangleFromVertices(v0, v1, v2 core.Vec3, surface core.Surface) *Triangle {
	return NewTriangle(v0, v1.Subtract(v0), v2.Subtract(v0), surface)
}

// Intersect tests if a ray intersects with the triangle
func (t *Triangle) Intersect(ray core.Ray) (float64, bool) {
	dist, u, v, ok := t.rect.IntersectUV(ray)
	if !ok {
		return 0, false
	}
	return dist, u > 0 && v > 0 && u+v < 1
}

// Normal returns the triangle's normal
func (t *Triangle) Normal(point core.Vec3) core.Vec3 {
	return t.rect.Normal(point)
}

// Material returns the triangle's surface
func (t *Triangle) Material() core.Surface {
	return t.rect.Material()
}
