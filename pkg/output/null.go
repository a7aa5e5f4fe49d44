package output

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Null discards every pixel. It is used for benchmarks and dry runs.
type Null struct{}

// NewNull creates a sink that writes nothing
func NewNull() *Null {
	return &Null{}
}

func (n *Null) SetRasterSize(width, height int)          {}
func (n *Null) BeginRender() error                       { return nil }
func (n *Null) EndRender() error                         { return nil }
func (n *Null) PutPixel(x, y int, color core.Vec3) error { return nil }
