package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewGlassScene creates a refractive sphere in front of colored pillars, lit by a soft light
func NewGlassScene() *Scene {
	s := New()
	s.Name = "glass"
	s.SamplingConfig = SamplingConfig{
		Width:    480,
		Height:   360,
		Sampler:  "adaptive",
		GridX:    2,
		GridY:    2,
		Variance: 0.0005,
	}

	glass := core.Surface{
		Ka:     0.0,
		Kd:     0.05,
		Ks:     0.7,
		Kr:     0.1,
		Kt:     0.85,
		P:      80,
		Color:  core.White,
		Medium: core.Glass,
	}

	floor := core.Surface{Ka: 0.1, Kd: 0.8, Ks: 0.1, P: 5, Color: core.NewVec3(0.9, 0.9, 0.85), Medium: core.Air}

	pillar := core.Surface{Ka: 0.2, Kd: 0.7, Ks: 0.4, Kr: 0.1, P: 25, Medium: core.Air}
	colors := []core.Vec3{core.Red, core.Green, core.Blue, core.Yellow}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, 1, 0), 1, floor))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0.2, 4), 1.2, glass))

	for i, color := range colors {
		surface := pillar
		surface.Color = color
		x := -2.4 + float64(i)*1.6
		s.AddShape(geometry.NewCylinderBetween(core.NewVec3(x, -1, 8), core.NewVec3(x, 2.5, 8), 0.5, surface))
	}

	s.AddLight(lights.NewSphereLight(core.White, core.NewVec3(-3, 6, 1), 1.0, 8))

	s.SetCamera(core.NewVec3(0, 0.5, -1), core.NewVec3(0, -0.05, 1), core.NewVec3(0, 1, 0))
	s.Camera.SetImagePlane(4.0/3.0*0.7, 0.7)

	return s
}
