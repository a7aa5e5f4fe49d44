package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

func TestScene_Defaults(t *testing.T) {
	s := New()

	if s.Background != core.NewVec3(0, 0.05, 0.05) {
		t.Errorf("Expected background (0,0.05,0.05), got %v", s.Background)
	}
	if s.MaxDepth != 10 {
		t.Errorf("Expected max depth 10, got %d", s.MaxDepth)
	}
	if s.Threshold() != 0.01 {
		t.Errorf("Expected threshold 0.01, got %f", s.Threshold())
	}
	if len(s.Shapes()) != 0 || len(s.Lights()) != 0 {
		t.Errorf("Expected empty scene, got %d shapes and %d lights", len(s.Shapes()), len(s.Lights()))
	}
}

func TestScene_Handles(t *testing.T) {
	s := New()
	a := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, core.Surface{})
	b := geometry.NewSphere(core.NewVec3(0, 0, 9), 1, core.Surface{})
	light := lights.NewPointLight(core.White, core.NewVec3(0, 5, 0), 5)

	idA := s.AddShape(a)
	idB := s.AddShape(b)
	lightID := s.AddLight(light)

	if idA == idB {
		t.Fatal("Expected distinct shape handles")
	}
	if s.Shape(idA) != core.Shape(a) || s.Shape(idB) != core.Shape(b) {
		t.Error("Shape handles do not resolve to the registered shapes")
	}
	if s.Light(lightID) != core.Light(light) {
		t.Error("Light handle does not resolve to the registered light")
	}
}

func TestScene_Intersect_EmptyMisses(t *testing.T) {
	s := New()
	for _, xy := range [][2]float64{{0, 0}, {-1, 1}, {1, -1}} {
		if _, _, hit := s.Intersect(s.CameraRay(xy[0], xy[1])); hit {
			t.Errorf("Expected miss in empty scene at %v", xy)
		}
	}
}

func TestScene_Intersect_NearestRegardlessOfOrder(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, 5), 1.5, core.Surface{})
	far := geometry.NewSphere(core.NewVec3(0, 0, 6), 1.5, core.Surface{})
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	orders := map[string][]core.Shape{
		"near first": {near, far},
		"far first":  {far, near},
	}

	for name, shapes := range orders {
		t.Run(name, func(t *testing.T) {
			s := New()
			for _, shape := range shapes {
				s.AddShape(shape)
			}

			shape, dist, hit := s.Intersect(ray)
			if !hit {
				t.Fatal("Expected hit")
			}
			if shape != core.Shape(near) {
				t.Error("Expected the nearer sphere")
			}
			if math.Abs(dist-3.5) > 1e-9 {
				t.Errorf("Expected distance 3.5, got %f", dist)
			}
		})
	}
}

func TestScene_Intersect_BeyondInfinity(t *testing.T) {
	s := New()
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 40000), 1, core.Surface{}))

	if _, _, hit := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); hit {
		t.Error("Expected hits beyond Infinity to be ignored")
	}
}

func TestCamera_Basis(t *testing.T) {
	camera := NewCamera(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))

	if !camera.AxisX.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected x axis (1,0,0), got %v", camera.AxisX)
	}
	if !camera.AxisY.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected y axis (0,1,0), got %v", camera.AxisY)
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))

	tests := []struct {
		x, y     float64
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(0, 0, 1)},
		{1, 0, core.NewVec3(1, 0, 1).Normalize()},
		{0, -1, core.NewVec3(0, -1, 1).Normalize()},
	}

	for _, tt := range tests {
		ray := camera.GetRay(tt.x, tt.y)
		if ray.Origin != camera.Eye {
			t.Errorf("Expected origin at the eye, got %v", ray.Origin)
		}
		if !ray.Direction.Equals(tt.expected) {
			t.Errorf("GetRay(%f, %f): expected %v, got %v", tt.x, tt.y, tt.expected, ray.Direction)
		}
	}
}

func TestScene_SetCameraKeepsImagePlane(t *testing.T) {
	s := New()
	s.Camera.SetImagePlane(2, 1.5)
	s.SetCamera(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	if s.Camera.HalfWidth != 2 || s.Camera.HalfHeight != 1.5 {
		t.Errorf("Expected image plane 2x1.5, got %fx%f", s.Camera.HalfWidth, s.Camera.HalfHeight)
	}
}
