package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scene      string
	scenesDir  string
	sampler    string
	width      int
	height     int
	grid       string
	variance   float64
	maxSamples int
	workers    int
	tileSize   int
	fidelity   string
	format     string
	output     string
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "default", "Scene: a built-in name or json:<file> from the scenes directory")
	flag.StringVar(&opts.scenesDir, "scenes-dir", "scenes", "Directory containing JSON scene files")
	flag.StringVar(&opts.sampler, "sampler", "", "Sampler: 'point', 'grid' or 'adaptive' (default: scene's choice)")
	flag.IntVar(&opts.width, "width", 0, "Image width (default: scene's choice)")
	flag.IntVar(&opts.height, "height", 0, "Image height (default: scene's choice)")
	flag.StringVar(&opts.grid, "grid", "", "Sub-pixel grid as NXxNY, e.g. 3x3 (default: scene's choice)")
	flag.Float64Var(&opts.variance, "variance", 0, "Adaptive sampling variance threshold (default: scene's choice)")
	flag.IntVar(&opts.maxSamples, "max-samples", renderer.DefaultMaxAdaptiveSamples, "Adaptive sample cap per pixel")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.tileSize, "tile-size", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.StringVar(&opts.fidelity, "fidelity", "strict", "Shading fidelity: 'strict' or 'corrected'")
	flag.StringVar(&opts.format, "format", "png", "Output format: "+strings.Join(output.Formats, ", "))
	flag.StringVar(&opts.output, "output", "", "Output file (default: output/<scene>/render_<timestamp>.<format>)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *list {
		if err := listScenes(opts.scenesDir); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the scene, renders it and writes the output
func run(ctx context.Context, opts options) error {
	fmt.Println("Starting Whitted Raytracer...")

	s, err := createScene(opts.scene, opts.scenesDir)
	if err != nil {
		return err
	}
	fmt.Printf("Using scene %s...\n", s.Name)

	config, err := buildRenderConfig(s, opts)
	if err != nil {
		return err
	}

	filename := opts.output
	if filename == "" && opts.format != "null" {
		filename, err = defaultOutputPath(s.Name, opts.format)
		if err != nil {
			return err
		}
	}

	sink, err := output.New(opts.format, filename)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(s, config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	if _, err := rt.Render(ctx, sink); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if filename != "" {
		fmt.Printf("Render saved as %s\n", filename)
	}
	return nil
}

// createScene resolves a scene name to a scene
func createScene(sceneType, scenesDir string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}

	// A direct path to a scene file
	if strings.HasSuffix(sceneType, ".json") {
		return loaders.LoadSceneJSON(sceneType)
	}
	return loaders.LoadScene(sceneType, scenesDir)
}

// buildRenderConfig starts from the scene's recommended config and applies the flags
func buildRenderConfig(s *scene.Scene, opts options) (renderer.RenderConfig, error) {
	config := renderer.RenderConfigForScene(s)

	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.sampler != "" {
		config.Sampler = opts.sampler
	}
	if opts.grid != "" {
		nx, ny, err := parseGrid(opts.grid)
		if err != nil {
			return config, err
		}
		config.GridX, config.GridY = nx, ny
	}
	if opts.variance > 0 {
		config.Variance = opts.variance
	}
	config.MaxSamples = opts.maxSamples
	config.NumWorkers = opts.workers
	config.TileSize = opts.tileSize

	fidelity, ok := core.ParseFidelity(opts.fidelity)
	if !ok {
		return config, fmt.Errorf("unknown fidelity: %s", opts.fidelity)
	}
	config.Fidelity = fidelity

	return config, nil
}

// parseGrid parses "NXxNY" or a single "N" for a square grid
func parseGrid(grid string) (int, int, error) {
	parts := strings.Split(strings.ToLower(grid), "x")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid %q, expected NXxNY", grid)
	}

	nx, errX := strconv.Atoi(parts[0])
	ny, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil || nx <= 0 || ny <= 0 {
		return 0, 0, fmt.Errorf("invalid grid %q, expected NXxNY", grid)
	}
	return nx, ny, nil
}

// defaultOutputPath creates output/<scene>/ and returns a timestamped file name inside it
func defaultOutputPath(sceneName, format string) (string, error) {
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format)), nil
}

// listScenes prints the scene groups
func listScenes(scenesDir string) error {
	response, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-20s %s\n", info.ID, info.Description)
		}
	}
	return nil
}
