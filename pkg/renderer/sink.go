package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sink receives the rendered pixels. The render loop calls SetRasterSize,
// then BeginRender, PutPixel for every pixel in row-major order and finally
// EndRender. EndRender is called whenever BeginRender succeeded, also when
// the render fails.
type Sink interface {
	SetRasterSize(width, height int)
	BeginRender() error
	EndRender() error
	PutPixel(x, y int, color core.Vec3) error
}

// SinkError reports a failure of the pixel sink
type SinkError struct {
	Op  string // "begin", "put" or "end"
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s failed: %v", e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
