package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewPrimitivesScene creates a scene with one of each shape, lit by a spot light and a point light
func NewPrimitivesScene() *Scene {
	s := New()
	s.Name = "primitives"
	s.SamplingConfig = SamplingConfig{
		Width:    640,
		Height:   480,
		Sampler:  "grid",
		GridX:    2,
		GridY:    2,
		Variance: 0.001,
	}

	matte := core.Surface{Ka: 0.2, Kd: 0.7, Ks: 0.3, P: 20, Color: core.White, Medium: core.Glass}

	floor := matte
	floor.Color = core.NewVec3(0.8, 0.8, 0.7)
	floor.Kr = 0.1

	mirror := matte
	mirror.Kd = 0.1
	mirror.Ks = 0.8
	mirror.Kr = 0.8
	mirror.P = 60

	orange := matte
	orange.Color = core.NewVec3(1.0, 0.55, 0.1)

	teal := matte
	teal.Color = core.NewVec3(0.1, 0.7, 0.7)
	teal.Kr = 0.2

	purple := matte
	purple.Color = core.NewVec3(0.6, 0.2, 0.8)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, 1, 0), 1, floor))

	// Mirror panel behind the objects
	s.AddShape(geometry.NewRect(core.NewVec3(-4, -1, 9), core.NewVec3(8, 0, 0), core.NewVec3(0, 5, 0), mirror))

	// Box rotated 45° around the y axis
	s.AddShape(geometry.NewBox(
		core.NewVec3(-2.5, -1, 5),
		core.NewVec3(0.9, 0, 0.9),
		core.NewVec3(-0.9, 0, 0.9),
		core.NewVec3(0, 1.4, 0),
		orange))

	s.AddShape(geometry.NewCylinderBetween(core.NewVec3(0.3, -1, 6), core.NewVec3(0.3, 1.2, 6), 0.7, teal))

	s.AddShape(geometry.NewTriangleFromVertices(
		core.NewVec3(1.8, -1, 4.5),
		core.NewVec3(3.4, -1, 5.5),
		core.NewVec3(2.6, 1.5, 5.0),
		purple))

	s.AddLight(lights.NewSpotLightDegrees(core.White, core.NewVec3(0, 6, 2), core.NewVec3(0, -1, 6), 20, 35, 2, 7))
	s.AddLight(lights.NewPointLight(core.NewVec3(0.4, 0.4, 0.5), core.NewVec3(-6, 4, -4), 12))

	s.SetCamera(core.NewVec3(0, 1, 0), core.NewVec3(0, -0.15, 1), core.NewVec3(0, 1, 0))
	s.Camera.SetImagePlane(4.0/3.0*0.6, 0.6)

	return s
}
