package output

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	_ renderer.Sink = (*PNG)(nil)
	_ renderer.Sink = (*HTMLCanvas)(nil)
	_ renderer.Sink = (*Null)(nil)
	_ renderer.Sink = (*Image)(nil)
)

func TestPNG_EncodesPixels(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPNGWriter(&buf)

	sink.SetRasterSize(2, 1)
	if err := sink.BeginRender(); err != nil {
		t.Fatalf("BeginRender failed: %v", err)
	}
	sink.PutPixel(0, 0, core.NewVec3(1, 0, 0))
	sink.PutPixel(1, 0, core.NewVec3(0.5, 1, 0))
	if err := sink.EndRender(); err != nil {
		t.Fatalf("EndRender failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}

	r, g, b, _ := img.At(1, 0).RGBA()
	if r>>8 != 127 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("Expected (127,255,0), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestPNG_RequiresRasterSize(t *testing.T) {
	sink := NewPNGWriter(&bytes.Buffer{})
	if err := sink.BeginRender(); err == nil {
		t.Error("Expected error without raster size")
	}
	if err := sink.PutPixel(0, 0, core.Vec3{}); err == nil {
		t.Error("Expected error before BeginRender")
	}
}

func TestPNGFile_RenderedScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	config := renderer.DefaultRenderConfig()
	config.Width = 16
	config.Height = 12
	rt, err := renderer.NewRaytracer(scene.New(), config, quietLogger{})
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}
	if _, err := rt.Render(context.Background(), NewPNG(path)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 0 || g>>8 != 12 || b>>8 != 12 {
		t.Errorf("Expected background (0,12,12), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestHTMLCanvas_WritesPixelCalls(t *testing.T) {
	var buf bytes.Buffer
	sink := NewHTMLWriter(&buf)

	sink.SetRasterSize(2, 1)
	if err := sink.BeginRender(); err != nil {
		t.Fatalf("BeginRender failed: %v", err)
	}
	sink.PutPixel(0, 0, core.NewVec3(1, 0.5, 0))
	sink.PutPixel(1, 0, core.NewVec3(0, 0.05, 0.05))
	if err := sink.EndRender(); err != nil {
		t.Fatalf("EndRender failed: %v", err)
	}

	page := buf.String()
	for _, want := range []string{
		`<canvas id="render" width="2" height="1">`,
		"pixel(0, 0, 255, 127, 0);\n",
		"pixel(1, 0, 0, 12, 12);\n",
		"</html>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	if strings.Index(page, "pixel(0, 0") > strings.Index(page, "pixel(1, 0") {
		t.Error("Expected pixels in the order they were written")
	}
}

func TestHTMLCanvas_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	sink := NewHTMLCanvas(path)

	sink.SetRasterSize(1, 1)
	if err := sink.BeginRender(); err != nil {
		t.Fatalf("BeginRender failed: %v", err)
	}
	sink.PutPixel(0, 0, core.NewVec3(1, 1, 1))
	if err := sink.EndRender(); err != nil {
		t.Fatalf("EndRender failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "pixel(0, 0, 255, 255, 255);") {
		t.Errorf("Expected white pixel call in %s", path)
	}
}

func TestHTMLCanvas_BadPath(t *testing.T) {
	sink := NewHTMLCanvas(filepath.Join(t.TempDir(), "missing", "out.html"))
	sink.SetRasterSize(1, 1)
	if err := sink.BeginRender(); err == nil {
		t.Error("Expected error for unwritable path")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestHTMLCanvas_HeaderWriteFails(t *testing.T) {
	sink := NewHTMLWriter(failingWriter{})
	sink.SetRasterSize(2, 2)
	if err := sink.BeginRender(); err == nil {
		t.Fatal("Expected error when the header cannot be written")
	}
	if err := sink.PutPixel(0, 0, core.White); err == nil {
		t.Error("Expected PutPixel to fail after a failed begin")
	}
}

func TestHTMLCanvas_HeaderWriteFailsClosesFile(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	sink := NewHTMLCanvas("/dev/full")
	sink.SetRasterSize(2, 2)
	if err := sink.BeginRender(); err == nil {
		t.Fatal("Expected error writing to a full device")
	}
	if sink.file != nil {
		t.Error("Expected the file to be closed after a failed begin")
	}
}

func TestNew(t *testing.T) {
	for _, format := range Formats {
		if _, err := New(format, "out"); err != nil {
			t.Errorf("Format %s: unexpected error %v", format, err)
		}
	}
	if _, err := New("bmp", "out.bmp"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

type quietLogger struct{}

func (quietLogger) Printf(format string, args ...interface{}) {}

func TestImage_StoresPixels(t *testing.T) {
	sink := NewImage()
	if err := sink.BeginRender(); err == nil {
		t.Error("Expected error without raster size")
	}

	sink.SetRasterSize(3, 2)
	if err := sink.BeginRender(); err != nil {
		t.Fatalf("BeginRender failed: %v", err)
	}
	sink.PutPixel(2, 1, core.NewVec3(0, 0.5, 1))

	got := sink.RGBA().RGBAAt(2, 1)
	if got.R != 0 || got.G != 127 || got.B != 255 || got.A != 255 {
		t.Errorf("Expected (0,127,255,255), got %v", got)
	}
}
