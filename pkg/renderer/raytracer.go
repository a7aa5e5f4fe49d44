package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains the raster, estimator and parallelism of a render
type RenderConfig struct {
	Width      int           // Image width in pixels
	Height     int           // Image height in pixels
	Sampler    string        // "point", "grid" or "adaptive"
	GridX      int           // Sub-pixel columns for grid and adaptive sampling
	GridY      int           // Sub-pixel rows for grid and adaptive sampling
	Variance   float64       // Adaptive stopping threshold
	MaxSamples int           // Adaptive sample cap per pixel
	TileSize   int           // Size of each tile
	NumWorkers int           // Number of parallel workers (0 = use CPU count)
	Fidelity   core.Fidelity // Legacy or corrected shading and sampling
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      640,
		Height:     480,
		Sampler:    "point",
		GridX:      3,
		GridY:      3,
		Variance:   0.001,
		MaxSamples: DefaultMaxAdaptiveSamples,
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Fidelity:   core.FidelityStrict,
	}
}

// RenderConfigForScene returns the default config with the scene's recommended sampling applied
func RenderConfigForScene(s *scene.Scene) RenderConfig {
	config := DefaultRenderConfig()
	sc := s.SamplingConfig

	if sc.Width > 0 && sc.Height > 0 {
		config.Width = sc.Width
		config.Height = sc.Height
	}
	if sc.Sampler != "" {
		config.Sampler = sc.Sampler
	}
	if sc.GridX > 0 && sc.GridY > 0 {
		config.GridX = sc.GridX
		config.GridY = sc.GridY
	}
	if sc.Variance > 0 {
		config.Variance = sc.Variance
	}

	return config
}

// Raytracer renders a scene into a sink
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	integrator integrator.Integrator
	estimator  Estimator
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the Whitted integrator
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", config.Width, config.Height)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}

	estimator, err := NewEstimator(config.Sampler, config.GridX, config.GridY, config.Variance, config.MaxSamples, config.Fidelity)
	if err != nil {
		return nil, fmt.Errorf("failed to create sampler: %w", err)
	}

	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integrator.NewWhittedIntegrator(integrator.Config{Fidelity: config.Fidelity}),
		estimator:  estimator,
		logger:     logger,
	}, nil
}

// Render traces every pixel and writes the result to sink in row-major order.
// The first sink error aborts the render and is returned as a *SinkError;
// cancelling ctx stops the render between tiles.
func (rt *Raytracer) Render(ctx context.Context, sink Sink) (stats RenderStats, err error) {
	width, height := rt.config.Width, rt.config.Height

	sink.SetRasterSize(width, height)
	if err := sink.BeginRender(); err != nil {
		return stats, &SinkError{Op: "begin", Err: err}
	}
	defer func() {
		if endErr := sink.EndRender(); endErr != nil && err == nil {
			err = &SinkError{Op: "end", Err: endErr}
		}
	}()

	pixels, stats, err := rt.RenderPixels(ctx)
	if err != nil {
		return stats, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := sink.PutPixel(x, y, pixels[y*width+x]); err != nil {
				return stats, &SinkError{Op: "put", Err: err}
			}
		}
	}

	return stats, nil
}

// RenderPixels renders all tiles in parallel and returns the clipped pixel
// colors in row-major order
func (rt *Raytracer) RenderPixels(ctx context.Context) ([]core.Vec3, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height

	raster := Raster{
		Width:      width,
		Height:     height,
		HalfWidth:  rt.scene.Camera.HalfWidth,
		HalfHeight: rt.scene.Camera.HalfHeight,
	}
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, rt.estimator, raster)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %s sampler, %d tiles on %d workers...\n",
		width, height, rt.estimator.Name(), len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	pixels := make([]core.Vec3, width*height)
	var stats RenderStats

	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			cancel()
			pool.Stop()
			return nil, stats, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			cancel()
			pool.Stop()
			return nil, stats, fmt.Errorf("render interrupted: %w", result.Error)
		}

		// Merge the private tile buffer into the image
		bounds := tiles[result.TaskID].Bounds
		k := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels[y*width+x] = result.Pixels[k]
				k++
			}
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v: %d rays, %.1f samples per pixel (range %d - %d), max depth %d\n",
		stats.Duration, stats.TotalRays, stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed, stats.MaxDepth)

	return pixels, stats, nil
}
