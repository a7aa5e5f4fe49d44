package loaders

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// SceneFile is the JSON description of a scene
type SceneFile struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Group       string                `json:"group,omitempty"`
	Camera      CameraCfg             `json:"camera"`
	Background  *mgl64.Vec3           `json:"background,omitempty"`
	Ambient     *mgl64.Vec3           `json:"ambient,omitempty"`
	MaxDepth    int                   `json:"maxDepth,omitempty"`
	Threshold   float64               `json:"threshold,omitempty"`
	Sampling    *SamplingCfg          `json:"sampling,omitempty"`
	Surfaces    map[string]SurfaceCfg `json:"surfaces,omitempty"`
	Shapes      []ShapeCfg            `json:"shapes"`
	Lights      []LightCfg            `json:"lights"`
}

// CameraCfg places the camera. LookAt takes precedence over View.
type CameraCfg struct {
	Eye        mgl64.Vec3  `json:"eye"`
	View       mgl64.Vec3  `json:"view,omitempty"`
	LookAt     *mgl64.Vec3 `json:"lookAt,omitempty"`
	Up         mgl64.Vec3  `json:"up"`
	HalfWidth  float64     `json:"halfWidth,omitempty"`
	HalfHeight float64     `json:"halfHeight,omitempty"`
}

// SamplingCfg is the recommended raster and estimator
type SamplingCfg struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Sampler  string  `json:"sampler"`
	Grid     [2]int  `json:"grid,omitempty"`
	Variance float64 `json:"variance,omitempty"`
}

// SurfaceCfg holds the Phong coefficients of a surface
type SurfaceCfg struct {
	Ka         float64    `json:"ka"`
	Kd         float64    `json:"kd"`
	Ks         float64    `json:"ks"`
	Kr         float64    `json:"kr"`
	Kt         float64    `json:"kt"`
	P          int        `json:"p"`
	Color      mgl64.Vec3 `json:"color"`
	IOR        float64    `json:"ior,omitempty"` // Refractive index of the medium behind the surface, 1 if unset
	Absorption float64    `json:"absorption,omitempty"`
}

// RotateCfg is a rotation about an axis in degrees
type RotateCfg struct {
	Axis    mgl64.Vec3 `json:"axis"`
	Degrees float64    `json:"degrees"`
}

// TransformCfg is one step of a shape's placement. Exactly one field is set.
type TransformCfg struct {
	Translate *mgl64.Vec3 `json:"translate,omitempty"`
	Rotate    *RotateCfg  `json:"rotate,omitempty"`
	Scale     *mgl64.Vec3 `json:"scale,omitempty"`
}

// ShapeCfg describes any shape. The fields used depend on Type.
type ShapeCfg struct {
	Type      string         `json:"type"`
	Surface   string         `json:"surface,omitempty"`  // Name in SceneFile.Surfaces
	Material  *SurfaceCfg    `json:"material,omitempty"` // Inline surface
	Transform []TransformCfg `json:"transform,omitempty"`

	Center   mgl64.Vec3   `json:"center,omitempty"`   // sphere
	Radius   float64      `json:"radius,omitempty"`   // sphere, cylinder
	Normal   mgl64.Vec3   `json:"normal,omitempty"`   // plane
	Distance float64      `json:"distance,omitempty"` // plane
	Point    *mgl64.Vec3  `json:"point,omitempty"`    // plane through a point
	Corner   mgl64.Vec3   `json:"corner,omitempty"`   // rect, triangle, box
	SideA    mgl64.Vec3   `json:"sideA,omitempty"`    // rect, triangle, box
	SideB    mgl64.Vec3   `json:"sideB,omitempty"`    // rect, triangle, box
	SideC    mgl64.Vec3   `json:"sideC,omitempty"`    // box
	Vertices []mgl64.Vec3 `json:"vertices,omitempty"` // triangle
	Min      *mgl64.Vec3  `json:"min,omitempty"`      // axis aligned box
	Max      *mgl64.Vec3  `json:"max,omitempty"`      // axis aligned box
	Base     mgl64.Vec3   `json:"base,omitempty"`     // cylinder
	Top      mgl64.Vec3   `json:"top,omitempty"`      // cylinder
}

// LightCfg describes a point, sphere or spot light
type LightCfg struct {
	Type          string     `json:"type"`
	Color         mgl64.Vec3 `json:"color"`
	Position      mgl64.Vec3 `json:"position"`
	DistanceScale float64    `json:"distanceScale"`
	Radius        float64    `json:"radius,omitempty"`         // sphere
	Target        mgl64.Vec3 `json:"target,omitempty"`         // spot
	ConeDegrees   float64    `json:"coneDegrees,omitempty"`    // spot
	EndConeDeg    float64    `json:"endConeDegrees,omitempty"` // spot
	Beam          int        `json:"beam,omitempty"`           // spot
}

// LoadSceneJSON reads a scene file
func LoadSceneJSON(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseSceneJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseSceneJSON builds a scene from its JSON description
func ParseSceneJSON(data []byte) (*scene.Scene, error) {
	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %w", err)
	}
	return file.Build()
}

// Build validates the description and constructs the scene
func (f SceneFile) Build() (*scene.Scene, error) {
	s := scene.New()
	s.Name = f.Name

	if f.Background != nil {
		s.Background = toVec3(*f.Background)
	}
	if f.Ambient != nil {
		s.Ambient = toVec3(*f.Ambient)
	}
	if f.MaxDepth > 0 {
		s.MaxDepth = f.MaxDepth
	}
	if f.Threshold > 0 {
		s.SetThreshold(f.Threshold)
	}
	if f.Sampling != nil {
		s.SamplingConfig = f.Sampling.build(s.SamplingConfig)
	}

	if err := f.Camera.apply(s); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	for i, shapeCfg := range f.Shapes {
		surface, err := f.surfaceFor(shapeCfg)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shape, err := shapeCfg.Build(surface)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.AddShape(shape)
	}

	for i, lightCfg := range f.Lights {
		light, err := lightCfg.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	return s, nil
}

func (f SceneFile) surfaceFor(shape ShapeCfg) (core.Surface, error) {
	if shape.Material != nil {
		return shape.Material.build(), nil
	}
	if shape.Surface == "" {
		return core.Surface{}, fmt.Errorf("no surface")
	}
	surface, ok := f.Surfaces[shape.Surface]
	if !ok {
		return core.Surface{}, fmt.Errorf("unknown surface: %s", shape.Surface)
	}
	return surface.build(), nil
}

func (c CameraCfg) apply(s *scene.Scene) error {
	view := c.View
	if c.LookAt != nil {
		view = c.LookAt.Sub(c.Eye)
	}
	if view.Len() == 0 {
		return fmt.Errorf("view direction is zero")
	}
	if view.Cross(c.Up).Len() == 0 {
		return fmt.Errorf("up vector is parallel to the view direction")
	}

	s.SetCamera(toVec3(c.Eye), toVec3(view.Normalize()), toVec3(c.Up))
	if c.HalfWidth > 0 && c.HalfHeight > 0 {
		s.Camera.SetImagePlane(c.HalfWidth, c.HalfHeight)
	}
	return nil
}

func (c SamplingCfg) build(defaults scene.SamplingConfig) scene.SamplingConfig {
	config := defaults
	if c.Width > 0 && c.Height > 0 {
		config.Width = c.Width
		config.Height = c.Height
	}
	if c.Sampler != "" {
		config.Sampler = c.Sampler
	}
	if c.Grid[0] > 0 && c.Grid[1] > 0 {
		config.GridX = c.Grid[0]
		config.GridY = c.Grid[1]
	}
	if c.Variance > 0 {
		config.Variance = c.Variance
	}
	return config
}

func (c SurfaceCfg) build() core.Surface {
	medium := core.Air
	if c.IOR > 0 {
		medium = core.Medium{Refraction: c.IOR, Absorption: c.Absorption}
	}
	return core.Surface{
		Ka:     c.Ka,
		Kd:     c.Kd,
		Ks:     c.Ks,
		Kr:     c.Kr,
		Kt:     c.Kt,
		P:      c.P,
		Color:  toVec3(c.Color),
		Medium: medium,
	}
}

// Matrix composes the transform steps in order, first step applied first
func Matrix(steps []TransformCfg) (mgl64.Mat4, error) {
	m := mgl64.Ident4()
	for i, step := range steps {
		var t mgl64.Mat4
		switch {
		case step.Translate != nil:
			t = mgl64.Translate3D(step.Translate.X(), step.Translate.Y(), step.Translate.Z())
		case step.Rotate != nil:
			if step.Rotate.Axis.Len() == 0 {
				return m, fmt.Errorf("transform %d: rotation axis is zero", i)
			}
			t = mgl64.HomogRotate3D(mgl64.DegToRad(step.Rotate.Degrees), step.Rotate.Axis.Normalize())
		case step.Scale != nil:
			if step.Scale.X() == 0 || step.Scale.Y() == 0 || step.Scale.Z() == 0 {
				return m, fmt.Errorf("transform %d: scale must be non-zero, got %v", i, *step.Scale)
			}
			t = mgl64.Scale3D(step.Scale.X(), step.Scale.Y(), step.Scale.Z())
		default:
			return m, fmt.Errorf("transform %d: empty step", i)
		}
		m = t.Mul4(m)
	}
	return m, nil
}

// Build creates the shape with the transform applied to its defining points and edges.
// Radii are scaled by the transform's average scale factor.
func (c ShapeCfg) Build(surface core.Surface) (core.Shape, error) {
	m, err := Matrix(c.Transform)
	if err != nil {
		return nil, err
	}

	point := func(v mgl64.Vec3) core.Vec3 { return toVec3(mgl64.TransformCoordinate(v, m)) }
	edge := func(v mgl64.Vec3) core.Vec3 { return toVec3(mgl64.TransformNormal(v, m)) }
	radiusScale := math.Cbrt(math.Abs(m.Mat3().Det()))

	switch c.Type {
	case "sphere":
		if c.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", c.Radius)
		}
		return geometry.NewSphere(point(c.Center), c.Radius*radiusScale, surface), nil

	case "plane":
		if c.Normal.Len() == 0 {
			return nil, fmt.Errorf("plane normal is zero")
		}
		// A point on n·p + d = 0
		onPlane := c.Normal.Mul(-c.Distance / c.Normal.Dot(c.Normal))
		if c.Point != nil {
			onPlane = *c.Point
		}
		normal := mgl64.TransformNormal(c.Normal, m.Inv().Transpose()).Normalize()
		return geometry.NewPlaneThroughPoint(point(onPlane), toVec3(normal), surface), nil

	case "rect":
		if c.SideA.Cross(c.SideB).Len() == 0 {
			return nil, fmt.Errorf("rect sides are parallel")
		}
		return geometry.NewRect(point(c.Corner), edge(c.SideA), edge(c.SideB), surface), nil

	case "triangle":
		if len(c.Vertices) > 0 {
			if len(c.Vertices) != 3 {
				return nil, fmt.Errorf("triangle needs 3 vertices, got %d", len(c.Vertices))
			}
			return geometry.NewTriangleFromVertices(point(c.Vertices[0]), point(c.Vertices[1]), point(c.Vertices[2]), surface), nil
		}
		if c.SideA.Cross(c.SideB).Len() == 0 {
			return nil, fmt.Errorf("triangle sides are parallel")
		}
		return geometry.NewTriangle(point(c.Corner), edge(c.SideA), edge(c.SideB), surface), nil

	case "box":
		corner, a, b, e := c.Corner, c.SideA, c.SideB, c.SideC
		if c.Min != nil && c.Max != nil {
			size := c.Max.Sub(*c.Min)
			corner = *c.Min
			a = mgl64.Vec3{size.X(), 0, 0}
			b = mgl64.Vec3{0, size.Y(), 0}
			e = mgl64.Vec3{0, 0, size.Z()}
		}
		if a.Dot(b.Cross(e)) == 0 {
			return nil, fmt.Errorf("box edges are degenerate")
		}
		return geometry.NewBox(point(corner), edge(a), edge(b), edge(e), surface), nil

	case "cylinder":
		if c.Radius <= 0 {
			return nil, fmt.Errorf("cylinder radius must be positive, got %g", c.Radius)
		}
		if c.Top.Sub(c.Base).Len() == 0 {
			return nil, fmt.Errorf("cylinder axis is zero")
		}
		return geometry.NewCylinderBetween(point(c.Base), point(c.Top), c.Radius*radiusScale, surface), nil

	default:
		return nil, fmt.Errorf("unknown shape type: %s", c.Type)
	}
}

// Build creates the light
func (c LightCfg) Build() (core.Light, error) {
	scale := c.DistanceScale
	if scale <= 0 {
		return nil, fmt.Errorf("distanceScale must be positive, got %g", scale)
	}
	color := toVec3(c.Color)
	position := toVec3(c.Position)

	switch c.Type {
	case "point":
		return lights.NewPointLight(color, position, scale), nil

	case "sphere":
		if c.Radius <= 0 {
			return nil, fmt.Errorf("sphere light radius must be positive, got %g", c.Radius)
		}
		return lights.NewSphereLight(color, position, c.Radius, scale), nil

	case "spot":
		if c.Target == c.Position {
			return nil, fmt.Errorf("spot light target equals its position")
		}
		if c.ConeDegrees <= 0 || c.EndConeDeg < c.ConeDegrees || c.EndConeDeg >= 180 {
			return nil, fmt.Errorf("invalid spot cone %g..%g degrees", c.ConeDegrees, c.EndConeDeg)
		}
		if c.Beam < 0 {
			return nil, fmt.Errorf("beam distribution must not be negative, got %d", c.Beam)
		}
		return lights.NewSpotLightDegrees(color, position, toVec3(c.Target), c.ConeDegrees, c.EndConeDeg, c.Beam, scale), nil

	default:
		return nil, fmt.Errorf("unknown light type: %s", c.Type)
	}
}

// LoadScene resolves a scene id: a built-in name or "json:<file>" inside dir
func LoadScene(id, dir string) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(id, "json:"); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("invalid scene file name: %q", name)
		}
		return LoadSceneJSON(filepath.Join(dir, name+".json"))
	}
	return scene.NewBuiltInScene(id)
}

func toVec3(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v.X(), v.Y(), v.Z())
}
