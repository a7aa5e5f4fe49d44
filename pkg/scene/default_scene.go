package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewDefaultScene creates three spheres over a reflective blue floor lit by one point light
func NewDefaultScene() *Scene {
	s := New()
	s.Name = "default"
	s.SamplingConfig = SamplingConfig{
		Width:    640,
		Height:   480,
		Sampler:  "grid",
		GridX:    3,
		GridY:    3,
		Variance: 0.001,
	}

	yellow := core.Surface{
		Ka:     0.2,
		Kd:     0.5,
		Ks:     0.6,
		Kr:     0.3,
		P:      30,
		Color:  core.Yellow,
		Medium: core.Glass,
	}

	red := yellow
	red.Kr = 0
	red.Color = core.Red

	blue := red
	blue.Color = core.Blue

	floor := red
	floor.Ka = 0.1
	floor.Kd = 0.5
	floor.Ks = 0.4
	floor.Kr = 0.4
	floor.Color = core.Blue

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1, 5), 1.5, yellow))
	s.AddShape(geometry.NewSphere(core.NewVec3(-3, 0, 6), 3, red))
	s.AddShape(geometry.NewSphere(core.NewVec3(3, 0, 4), 1, blue))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 1, 0), 1, floor))

	s.AddLight(lights.NewPointLight(core.White, core.NewVec3(10, 5, -10), 17))

	s.SetCamera(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))
	s.Camera.SetImagePlane(4.0/3.0, 1.0)

	return s
}
