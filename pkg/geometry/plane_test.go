package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	// Ground plane y = -1
	plane := NewPlane(core.NewVec3(0, 1, 0), 1.0, core.Surface{})

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"straight down", core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), true, 3.0},
		{"from below", core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0), true, 2.0},
		{"pointing away", core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0), false, 0},
		{"parallel", core.NewVec3(0, 2, 0), core.NewVec3(1, 0, 0), false, 0},
		{"nearly parallel", core.NewVec3(0, 2, 0), core.NewVec3(1, -0.005, 0).Normalize(), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, isHit := plane.Intersect(core.NewRay(tt.origin, tt.direction))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(dist-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, dist)
			}
		})
	}
}

func TestNewPlaneFromABCD_Normalizes(t *testing.T) {
	plane := NewPlaneFromABCD(0, 2, 0, 4, core.Surface{})

	if !plane.Normal(core.Vec3{}).Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected unit normal, got %v", plane.Normal(core.Vec3{}))
	}
	if math.Abs(plane.Distance-2.0) > 1e-9 {
		t.Errorf("Expected distance 2, got %f", plane.Distance)
	}
}

func TestNewPlaneThroughPoint(t *testing.T) {
	plane := NewPlaneThroughPoint(core.NewVec3(0, 0, 7), core.NewVec3(0, 0, -3), core.Surface{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	dist, isHit := plane.Intersect(ray)
	if !isHit || math.Abs(dist-7.0) > 1e-9 {
		t.Errorf("Expected hit at 7, got hit=%t t=%f", isHit, dist)
	}
}
