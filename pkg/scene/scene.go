package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Infinity is the largest ray parameter the scene reports as a hit
const Infinity = 30000.0

// Default environment constants
var (
	DefaultBackground = core.NewVec3(0, 0.05, 0.05)
	DefaultAmbient    = core.NewVec3(1, 1, 1)
)

const (
	DefaultMaxDepth  = 10
	DefaultThreshold = 0.01
)

// ShapeID is a handle to a shape registered with a scene
type ShapeID int

// LightID is a handle to a light registered with a scene
type LightID int

// Scene holds the shapes, lights, camera and global constants of a render.
// It is built before rendering starts and only read while tracing.
type Scene struct {
	Name           string
	Camera         *Camera
	Background     core.Vec3 // Color of rays that hit nothing
	Ambient        core.Vec3 // Global ambient intensity
	MaxDepth       int       // Maximum recursion depth of the tracer
	SamplingConfig SamplingConfig

	shapes    []core.Shape
	lights    []core.Light
	threshold float64
}

// SamplingConfig is the raster and estimator a scene is meant to be rendered with
type SamplingConfig struct {
	Width    int     // Image width
	Height   int     // Image height
	Sampler  string  // "point", "grid" or "adaptive"
	GridX    int     // Sub-pixel columns
	GridY    int     // Sub-pixel rows
	Variance float64 // Adaptive stopping threshold
}

// DefaultSamplingConfig returns the raster used by scenes that don't set their own
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:    640,
		Height:   480,
		Sampler:  "grid",
		GridX:    3,
		GridY:    3,
		Variance: 0.001,
	}
}

// New creates an empty scene with the camera at the origin looking along +z
func New() *Scene {
	return &Scene{
		Camera:         NewCamera(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0)),
		Background:     DefaultBackground,
		Ambient:        DefaultAmbient,
		MaxDepth:       DefaultMaxDepth,
		SamplingConfig: DefaultSamplingConfig(),
		threshold:      DefaultThreshold,
	}
}

// AddShape registers a shape and returns its handle
func (s *Scene) AddShape(shape core.Shape) ShapeID {
	s.shapes = append(s.shapes, shape)
	return ShapeID(len(s.shapes) - 1)
}

// AddLight registers a light and returns its handle
func (s *Scene) AddLight(light core.Light) LightID {
	s.lights = append(s.lights, light)
	return LightID(len(s.lights) - 1)
}

// Shape returns the shape registered under id
func (s *Scene) Shape(id ShapeID) core.Shape {
	return s.shapes[id]
}

// Light returns the light registered under id
func (s *Scene) Light(id LightID) core.Light {
	return s.lights[id]
}

// Shapes returns all shapes in registration order
func (s *Scene) Shapes() []core.Shape {
	return s.shapes
}

// Lights returns all lights in registration order
func (s *Scene) Lights() []core.Light {
	return s.lights
}

// Threshold is the cutoff below which contributions are ignored
func (s *Scene) Threshold() float64 {
	return s.threshold
}

// SetThreshold overrides the numeric cutoff
func (s *Scene) SetThreshold(threshold float64) {
	s.threshold = threshold
}

// SetCamera places the camera at eye looking along view
func (s *Scene) SetCamera(eye, view, up core.Vec3) {
	halfWidth, halfHeight := s.Camera.HalfWidth, s.Camera.HalfHeight
	s.Camera = NewCamera(eye, view, up)
	s.Camera.SetImagePlane(halfWidth, halfHeight)
}

// CameraRay returns the primary ray through image plane point (x, y)
func (s *Scene) CameraRay(x, y float64) core.Ray {
	return s.Camera.GetRay(x, y)
}

// Intersect finds the closest shape hit by ray. Every shape is tested.
func (s *Scene) Intersect(ray core.Ray) (core.Shape, float64, bool) {
	var closest core.Shape
	closestT := Infinity

	for _, shape := range s.shapes {
		if t, ok := shape.Intersect(ray); ok && t < closestT {
			closestT = t
			closest = shape
		}
	}

	return closest, closestT, closest != nil
}
