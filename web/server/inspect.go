package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Surface      map[string]interface{} `json:"surface,omitempty"`
	Geometry     map[string]interface{} `json:"geometry,omitempty"`
}

// InspectResult describes the first shape hit by an inspection ray
type InspectResult struct {
	Hit      bool
	Shape    core.Shape
	Distance float64
	Point    core.Vec3
	Normal   core.Vec3
}

// inspectPixel casts the primary ray through the position of pixel (x, y)
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	raster := renderer.Raster{
		Width:      width,
		Height:     height,
		HalfWidth:  sceneObj.Camera.HalfWidth,
		HalfHeight: sceneObj.Camera.HalfHeight,
	}
	pixel := raster.Pixel(pixelX, pixelY)
	ray := sceneObj.CameraRay(pixel.X, pixel.Y)

	shape, t, ok := sceneObj.Intersect(ray)
	if !ok {
		return InspectResult{}
	}

	point := ray.At(t)
	return InspectResult{
		Hit:      true,
		Shape:    shape,
		Distance: t,
		Point:    point,
		Normal:   shape.Normal(point),
	}
}

// surfaceInfo lists the shading coefficients of a surface
func surfaceInfo(surface core.Surface) map[string]interface{} {
	return map[string]interface{}{
		"ka":         surface.Ka,
		"kd":         surface.Kd,
		"ks":         surface.Ks,
		"kr":         surface.Kr,
		"kt":         surface.Kt,
		"p":          surface.P,
		"color":      vecToArray(surface.Color),
		"refraction": surface.Medium.Refraction,
	}
}

// geometryInfo extracts the defining parameters of a shape
func geometryInfo(shape core.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecToArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	case *geometry.Plane:
		properties["normal"] = vecToArray(geom.Normal(core.Vec3{}))
		properties["distance"] = geom.Distance
		return "plane", properties
	case *geometry.Rect:
		properties["corner"] = vecToArray(geom.Corner)
		properties["sideA"] = vecToArray(geom.SideA)
		properties["sideB"] = vecToArray(geom.SideB)
		return "rect", properties
	case *geometry.Triangle:
		return "triangle", properties
	case *geometry.Box:
		properties["corner"] = vecToArray(geom.Corner)
		properties["edges"] = [][3]float64{vecToArray(geom.E1), vecToArray(geom.E2), vecToArray(geom.E3)}
		return "box", properties
	case *geometry.Cylinder:
		properties["base"] = vecToArray(geom.Base)
		properties["axis"] = vecToArray(geom.Axis)
		properties["radius"] = geom.Radius
		return "cylinder", properties
	default:
		return "unknown", properties
	}
}

func vecToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect reports what the primary ray through a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, sceneObj, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := geometryInfo(result.Shape)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecToArray(result.Point),
		Normal:       vecToArray(result.Normal),
		Distance:     result.Distance,
		Surface:      surfaceInfo(result.Shape.Material()),
		Geometry:     geometryProps,
	})
}
