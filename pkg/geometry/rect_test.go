package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestRect_Intersect(t *testing.T) {
	// Unit square in the z=5 plane, skewed edges to exercise the dual basis
	rect := NewRect(
		core.NewVec3(0, 0, 5),
		core.NewVec3(2, 0, 0),
		core.NewVec3(1, 2, 0),
		core.Surface{},
	)

	tests := []struct {
		name      string
		target    core.Vec3
		expectHit bool
	}{
		{"center", core.NewVec3(1.5, 1, 5), true},
		{"near corner inside", core.NewVec3(0.2, 0.1, 5), true},
		{"left of skewed edge", core.NewVec3(0.1, 1.5, 5), false},
		{"beyond far edge", core.NewVec3(3.5, 1, 5), false},
		{"below", core.NewVec3(1, -0.1, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.target.X, tt.target.Y, 0), core.NewVec3(0, 0, 1))
			dist, isHit := rect.Intersect(ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(dist-5.0) > 1e-9 {
				t.Errorf("Expected t=5, got %f", dist)
			}
		})
	}
}

func TestRect_IntersectUV(t *testing.T) {
	rect := NewRect(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 2, 0), core.Surface{})
	ray := core.NewRay(core.NewVec3(1, 1.5, -1), core.NewVec3(0, 0, 1))

	_, u, v, ok := rect.IntersectUV(ray)
	if !ok {
		t.Fatal("Expected plane hit")
	}
	if math.Abs(u-0.25) > 1e-9 || math.Abs(v-0.75) > 1e-9 {
		t.Errorf("Expected (u,v)=(0.25,0.75), got (%f,%f)", u, v)
	}
}

func TestRect_Normal(t *testing.T) {
	rect := NewRect(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.Surface{})
	if !rect.Normal(core.Vec3{}).Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", rect.Normal(core.Vec3{}))
	}
}
