package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewSphereGridScene creates a grid of reflective spheres in rainbow colors
func NewSphereGridScene(gridSize int) *Scene {
	s := New()
	s.Name = "sphere-grid"
	s.SamplingConfig = SamplingConfig{
		Width:    640,
		Height:   480,
		Sampler:  "point",
		GridX:    1,
		GridY:    1,
		Variance: 0.001,
	}

	floor := core.Surface{Ka: 0.1, Kd: 0.6, Ks: 0.2, Kr: 0.3, P: 10, Color: core.NewVec3(0.5, 0.5, 0.5), Medium: core.Air}
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 1, 0), 1, floor))

	spacing := 1.2
	radius := 0.45
	offset := float64(gridSize-1) * spacing / 2

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			hue := float64(i*gridSize+j) / float64(gridSize*gridSize)
			surface := core.Surface{
				Ka:     0.1,
				Kd:     0.6,
				Ks:     0.5,
				Kr:     0.35,
				P:      40,
				Color:  hueToRGB(hue),
				Medium: core.Air,
			}
			center := core.NewVec3(float64(i)*spacing-offset, radius-1, float64(j)*spacing+4)
			s.AddShape(geometry.NewSphere(center, radius, surface))
		}
	}

	s.AddLight(lights.NewPointLight(core.White, core.NewVec3(-5, 8, -2), 12))
	s.AddLight(lights.NewPointLight(core.NewVec3(0.3, 0.3, 0.4), core.NewVec3(6, 3, 0), 10))

	s.SetCamera(core.NewVec3(0, 3, -2), core.NewVec3(0, -0.5, 1), core.NewVec3(0, 1, 0))
	s.Camera.SetImagePlane(4.0/3.0*0.8, 0.8)

	return s
}

// hueToRGB converts a hue in [0, 1) to a fully saturated color
func hueToRGB(hue float64) core.Vec3 {
	h := hue * 6
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch int(h) {
	case 0:
		return core.NewVec3(1, x, 0)
	case 1:
		return core.NewVec3(x, 1, 0)
	case 2:
		return core.NewVec3(0, 1, x)
	case 3:
		return core.NewVec3(0, x, 1)
	case 4:
		return core.NewVec3(x, 0, 1)
	default:
		return core.NewVec3(1, 0, x)
	}
}
