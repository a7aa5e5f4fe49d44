package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

const (
	// GeometryThreshold is the smallest ray parameter accepted as a hit.
	// Anything closer is treated as the ray's own origin surface.
	GeometryThreshold = 0.001

	// ParallelEpsilon rejects rays nearly parallel to a plane, where the
	// intersection division becomes ill-conditioned
	ParallelEpsilon = 0.01

	// infinity bounds the slab interval of a box
	infinity = 30000.0
)

// Interface checks
var (
	_ core.Shape = (*Sphere)(nil)
	_ core.Shape = (*Plane)(nil)
	_ core.Shape = (*Rect)(nil)
	_ core.Shape = (*Triangle)(nil)
	_ core.Shape = (*Box)(nil)
	_ core.Shape = (*Cylinder)(nil)
)
