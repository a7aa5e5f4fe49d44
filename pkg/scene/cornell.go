package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewCornellScene creates a Cornell box built from rectangles with a glass sphere and a box,
// lit by a spot light under the ceiling
func NewCornellScene() *Scene {
	s := New()
	s.Name = "cornell"
	s.Background = core.Black
	s.SamplingConfig = SamplingConfig{
		Width:    400,
		Height:   400,
		Sampler:  "grid",
		GridX:    3,
		GridY:    3,
		Variance: 0.001,
	}

	wall := core.Surface{Ka: 0.15, Kd: 0.8, Ks: 0.05, P: 5, Medium: core.Air}

	white := wall
	white.Color = core.NewVec3(0.73, 0.73, 0.73)
	red := wall
	red.Color = core.NewVec3(0.65, 0.05, 0.05)
	green := wall
	green.Color = core.NewVec3(0.12, 0.45, 0.15)

	glass := core.Surface{Kd: 0.05, Ks: 0.8, Kr: 0.1, Kt: 0.85, P: 100, Color: core.White, Medium: core.Glass}
	block := white
	block.Ks = 0.3
	block.P = 20

	// Room spans x, y in [-1, 1] and z in [0, 3]
	// Floor
	s.AddShape(geometry.NewRect(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), white))
	// Ceiling
	s.AddShape(geometry.NewRect(core.NewVec3(-1, 1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), white))
	// Back
	s.AddShape(geometry.NewRect(core.NewVec3(-1, -1, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), white))
	// Left
	s.AddShape(geometry.NewRect(core.NewVec3(-1, -1, 0), core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 3), red))
	// Right
	s.AddShape(geometry.NewRect(core.NewVec3(1, -1, 0), core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 3), green))

	s.AddShape(geometry.NewSphere(core.NewVec3(0.4, -0.6, 1.6), 0.4, glass))
	s.AddShape(geometry.NewBox(
		core.NewVec3(-0.75, -1, 2.0),
		core.NewVec3(0.45, 0, -0.15),
		core.NewVec3(0.15, 0, 0.45),
		core.NewVec3(0, 0.9, 0),
		block))

	s.AddLight(lights.NewSpotLightDegrees(core.White, core.NewVec3(0, 0.95, 1.5), core.NewVec3(0, -1, 1.5), 45, 70, 1, 1.6))
	s.AddLight(lights.NewPointLight(core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0, 0.5, 0.2), 1.5))

	s.SetCamera(core.NewVec3(0, 0, -1.2), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))
	s.Camera.SetImagePlane(0.45, 0.45)

	return s
}
