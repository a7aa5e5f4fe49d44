package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TraceContext is the mutable state of one primary ray's recursion.
// It is created per primary ray and never shared between pixels.
type TraceContext struct {
	Depth           int          // Current recursion depth
	TotalRays       int          // Rays cast so far
	MaxDepthReached int          // Deepest level seen
	Sampler         core.Sampler // Random source for soft lights
}

// WhittedIntegrator implements recursive ray tracing with Phong local
// illumination, mirror reflection and refraction
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{
		config: config,
	}
}

// RayColor traces a primary ray starting in air with full weight
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) (core.Vec3, TraceStats) {
	ctx := &TraceContext{Sampler: sampler}
	color := w.Trace(ctx, s, core.Air, 1.0, ray)

	return color, TraceStats{Rays: ctx.TotalRays, MaxDepth: ctx.MaxDepthReached}
}

// Trace returns the color seen along ray travelling through medium. weight is
// the product of the coefficients along the path so far.
func (w *WhittedIntegrator) Trace(ctx *TraceContext, s *scene.Scene, medium core.Medium, weight float64, ray core.Ray) core.Vec3 {
	ctx.Depth++
	ctx.TotalRays++
	if ctx.Depth > ctx.MaxDepthReached {
		ctx.MaxDepthReached = ctx.Depth
	}

	var color core.Vec3
	if shape, t, hit := s.Intersect(ray); hit {
		color = w.shade(ctx, s, medium, weight, ray.At(t), ray.Direction, shape)
	} else {
		color = s.Background
	}

	ctx.Depth--
	return color
}

// shade computes local illumination at point and adds the reflected and
// transmitted contributions
func (w *WhittedIntegrator) shade(ctx *TraceContext, s *scene.Scene, medium core.Medium, weight float64, point, view core.Vec3, shape core.Shape) core.Vec3 {
	threshold := s.Threshold()
	texture := core.FindTexture(shape, point)

	// Make the normal face the viewer
	entering := true
	vn := view.Dot(texture.Normal)
	if vn > 0 {
		texture.Normal = texture.Normal.Negate()
		vn = -vn
		entering = false
	}
	n := texture.Normal

	ambient := texture.Ka
	if w.config.Fidelity == core.FidelityStrict {
		ambient = texture.Kr
	}
	color := s.Ambient.MultiplyVec(texture.Color).Multiply(ambient)

	for _, light := range s.Lights() {
		shadow, l := light.Shadow(point, s, ctx.Sampler)
		if shadow <= threshold {
			continue
		}

		ln := l.Dot(n)
		if ln <= threshold {
			continue
		}

		if texture.Kd > threshold {
			color = color.Add(light.Color().MultiplyVec(texture.Color).Multiply(texture.Kd * shadow * ln))
		}

		if texture.Ks > threshold {
			h := l.Subtract(view).Normalize()
			color = color.Add(light.Color().Multiply(texture.Ks * shadow * math.Pow(n.Dot(h), float64(texture.P))))
		}
	}

	if ctx.Depth >= s.MaxDepth {
		return color
	}

	if rWeight := weight * texture.Kr; rWeight > threshold {
		reflected := core.NewRay(point, view.Subtract(n.Multiply(2*vn)))
		color = color.Add(w.Trace(ctx, s, medium, rWeight, reflected).Multiply(texture.Kr))
	}

	if tWeight := weight * texture.Kt; tWeight > threshold {
		next := core.Air
		if entering {
			next = texture.Medium
		}
		eta := medium.Refraction / next.Refraction

		if direction, ok := refractDirection(view, n, eta, -vn, threshold); ok {
			k := texture.Kt
			if w.config.Fidelity == core.FidelityStrict {
				k = texture.Kr
			}
			transmitted := core.NewRay(point, direction)
			color = color.Add(w.Trace(ctx, s, next, tWeight, transmitted).Multiply(k))
		}
	}

	return color
}

// refractDirection bends view through a surface with normal n facing the
// viewer. eta is the ratio of refractive indices and cosIncident = -view·n.
// Returns false on total internal reflection.
func refractDirection(view, n core.Vec3, eta, cosIncident, threshold float64) (core.Vec3, bool) {
	ctSquare := 1 + eta*eta*(cosIncident*cosIncident-1)
	if ctSquare <= threshold {
		return core.Vec3{}, false
	}
	return view.Multiply(eta).Add(n.Multiply(eta*cosIncident - math.Sqrt(ctSquare))), true
}
