package output

import (
	"fmt"
	"image"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/fogleman/gg"
)

// PNG collects pixels in a drawing context and encodes them as PNG when the
// render ends. The result goes to a file or to a writer.
type PNG struct {
	path   string
	writer io.Writer

	width, height int
	dc            *gg.Context
}

// NewPNG creates a sink that saves the image to path
func NewPNG(path string) *PNG {
	return &PNG{path: path}
}

// NewPNGWriter creates a sink that encodes the image to w
func NewPNGWriter(w io.Writer) *PNG {
	return &PNG{writer: w}
}

// SetRasterSize implements renderer.Sink
func (p *PNG) SetRasterSize(width, height int) {
	p.width, p.height = width, height
}

// BeginRender allocates the image
func (p *PNG) BeginRender() error {
	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("raster size not set")
	}
	p.dc = gg.NewContext(p.width, p.height)
	return nil
}

// PutPixel stores the color of pixel (x, y)
func (p *PNG) PutPixel(x, y int, color core.Vec3) error {
	if p.dc == nil {
		return fmt.Errorf("render not started")
	}
	p.dc.SetRGB(color.X, color.Y, color.Z)
	p.dc.SetPixel(x, y)
	return nil
}

// EndRender encodes the image
func (p *PNG) EndRender() error {
	if p.dc == nil {
		return fmt.Errorf("render not started")
	}
	if p.writer != nil {
		return p.dc.EncodePNG(p.writer)
	}
	if err := p.dc.SavePNG(p.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", p.path, err)
	}
	return nil
}

// Image returns the rendered image, or nil before the render started
func (p *PNG) Image() image.Image {
	if p.dc == nil {
		return nil
	}
	return p.dc.Image()
}
