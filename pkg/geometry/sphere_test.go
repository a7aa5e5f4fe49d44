package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Intersect_AlongAxis(t *testing.T) {
	sphere := NewSphere(core.NewVec3(10, 0, 0), 1.0, core.Surface{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	dist, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if dist <= 8.999 || dist >= 9.001 {
		t.Errorf("Expected distance in (8.999, 9.001), got %f", dist)
	}
}

func TestSphere_Intersect_GrazingBand(t *testing.T) {
	sphere := NewSphere(core.NewVec3(10, 0, 0), 1.0, core.Surface{})

	tests := []struct {
		name      string
		direction core.Vec3
		expectHit bool
	}{
		{"near grazing hit", core.NewVec3(10, 1.001, 0), true},
		{"tangent miss", core.NewVec3(10, 1.01, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction.Normalize())
			_, isHit := sphere.Intersect(ray)
			if isHit != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
		})
	}
}

func TestSphere_Intersect_RootsSymmetricAboutProjection(t *testing.T) {
	center := core.NewVec3(0, 0, -5)
	radius := 2.0
	sphere := NewSphere(center, radius, core.Surface{})

	// From outside along the line through the center
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	near, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// From just past the near root the far root is returned
	inside := core.NewRay(ray.At(near+0.5), ray.Direction)
	far, isHit := sphere.Intersect(inside)
	if !isHit {
		t.Fatal("Expected exit hit from inside the sphere")
	}
	far += near + 0.5

	projection := center.Subtract(ray.Origin).Dot(ray.Direction)
	if math.Abs((projection-near)-(far-projection)) > 1e-9 {
		t.Errorf("Roots %f and %f are not symmetric about %f", near, far, projection)
	}
	if math.Abs(near-3.0) > 1e-9 {
		t.Errorf("Expected nearer root 3, got %f", near)
	}
}

func TestSphere_Intersect_FromSurfaceUsesFarRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.Surface{})

	// Origin sits on the surface, as a reflected or refracted ray does
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	dist, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected the far side to be hit")
	}
	if math.Abs(dist-2.0) > 1e-9 {
		t.Errorf("Expected distance 2, got %f", dist)
	}

	// Leaving outward the sphere is not hit again
	out := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	if dist, isHit := sphere.Intersect(out); isHit {
		t.Errorf("Expected miss when leaving the surface, got hit at %f", dist)
	}
}

func TestSphere_Intersect_Behind(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.Surface{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if dist, isHit := sphere.Intersect(ray); isHit {
		t.Errorf("Expected miss for sphere behind the ray, got hit at %f", dist)
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, core.Surface{})
	normal := sphere.Normal(core.NewVec3(1, 4, 3))

	if !normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected normal (0,1,0), got %v", normal)
	}
}
