package output

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Formats lists the output formats accepted by New
var Formats = []string{"png", "html", "null"}

// New creates the sink for format writing to path
func New(format, path string) (renderer.Sink, error) {
	switch format {
	case "png":
		return NewPNG(path), nil
	case "html":
		return NewHTMLCanvas(path), nil
	case "null":
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
