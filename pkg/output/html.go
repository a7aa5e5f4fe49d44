package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Render</title>
</head>
<body style="background: #222">
<canvas id="render" width="%d" height="%d"></canvas>
<script>
var ctx = document.getElementById("render").getContext("2d");
function pixel(x, y, r, g, b) {
  ctx.fillStyle = "rgb(" + r + "," + g + "," + b + ")";
  ctx.fillRect(x, y, 1, 1);
}
`

const htmlFooter = `</script>
</body>
</html>
`

// HTMLCanvas writes an HTML page whose script paints every pixel onto a canvas
type HTMLCanvas struct {
	path   string
	writer io.Writer

	width, height int
	file          *os.File
	buf           *bufio.Writer
}

// NewHTMLCanvas creates a sink that writes the page to path
func NewHTMLCanvas(path string) *HTMLCanvas {
	return &HTMLCanvas{path: path}
}

// NewHTMLWriter creates a sink that writes the page to w
func NewHTMLWriter(w io.Writer) *HTMLCanvas {
	return &HTMLCanvas{writer: w}
}

// SetRasterSize implements renderer.Sink
func (h *HTMLCanvas) SetRasterSize(width, height int) {
	h.width, h.height = width, height
}

// BeginRender opens the output and writes the page header
func (h *HTMLCanvas) BeginRender() error {
	w := h.writer
	if w == nil {
		file, err := os.Create(h.path)
		if err != nil {
			return err
		}
		h.file = file
		w = file
	}

	buf := bufio.NewWriter(w)
	_, err := fmt.Fprintf(buf, htmlHeader, h.width, h.height)
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		// EndRender is not called after a failed begin
		if h.file != nil {
			h.file.Close()
			h.file = nil
		}
		return err
	}

	h.buf = buf
	return nil
}

// PutPixel writes one pixel call with 8-bit channels
func (h *HTMLCanvas) PutPixel(x, y int, color core.Vec3) error {
	if h.buf == nil {
		return fmt.Errorf("render not started")
	}
	r, g, b := toByte(color.X), toByte(color.Y), toByte(color.Z)
	_, err := fmt.Fprintf(h.buf, "pixel(%d, %d, %d, %d, %d);\n", x, y, r, g, b)
	return err
}

// EndRender writes the footer and closes the output
func (h *HTMLCanvas) EndRender() error {
	if h.buf == nil {
		return fmt.Errorf("render not started")
	}

	_, err := h.buf.WriteString(htmlFooter)
	if err == nil {
		err = h.buf.Flush()
	}
	h.buf = nil

	if h.file != nil {
		if closeErr := h.file.Close(); err == nil {
			err = closeErr
		}
		h.file = nil
	}
	return err
}

// toByte truncates a [0,1] channel to 8 bits
func toByte(c float64) uint8 {
	return uint8(c * 255)
}
