package output

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image keeps the rendered pixels in memory
type Image struct {
	width, height int
	img           *image.RGBA
}

// NewImage creates an in-memory sink
func NewImage() *Image {
	return &Image{}
}

// SetRasterSize implements renderer.Sink
func (i *Image) SetRasterSize(width, height int) {
	i.width, i.height = width, height
}

// BeginRender allocates the image
func (i *Image) BeginRender() error {
	if i.width <= 0 || i.height <= 0 {
		return fmt.Errorf("raster size not set")
	}
	i.img = image.NewRGBA(image.Rect(0, 0, i.width, i.height))
	return nil
}

// PutPixel stores pixel (x, y) with 8-bit channels
func (i *Image) PutPixel(x, y int, c core.Vec3) error {
	if i.img == nil {
		return fmt.Errorf("render not started")
	}
	i.img.SetRGBA(x, y, color.RGBA{R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 255})
	return nil
}

// EndRender implements renderer.Sink
func (i *Image) EndRender() error {
	return nil
}

// RGBA returns the rendered image, or nil before the render started
func (i *Image) RGBA() *image.RGBA {
	return i.img
}
