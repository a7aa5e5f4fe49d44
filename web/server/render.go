package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/fogleman/gg"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string                `json:"scene"`
	Width    int                   `json:"width"`
	Height   int                   `json:"height"`
	Fidelity string                `json:"fidelity"`
	Config   renderer.RenderConfig `json:"-"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	TotalRays      int     `json:"totalRays"`
	AverageSamples float64 `json:"averageSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
	MaxDepth       int     `json:"maxDepth"`
}

// RenderResult is the final event of a streamed render
type RenderResult struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRenderPNG renders the requested scene and returns it as a PNG image
func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	req, sceneObj, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, _, err := s.render(r.Context(), sceneObj, req.Config, &logWriter{prefix: req.Scene})
	if err != nil {
		log.Printf("Render of %s failed: %v", req.Scene, err)
		writeError(w, http.StatusInternalServerError, "Render failed")
		return
	}

	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(buf.Bytes())
}

// handleRender renders with the render log streamed as SSE console events,
// followed by a complete event carrying the image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	sseEventChan := make(chan SSEEvent, 100)
	done := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, ctx, sseEventChan)
		close(done)
	}()
	defer func() {
		close(sseEventChan)
		<-done
	}()

	req, sceneObj, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	webLogger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), consoleChan)

	startTime := time.Now()
	type renderOutcome struct {
		img   image.Image
		stats renderer.RenderStats
		err   error
	}
	outcome := make(chan renderOutcome, 1)
	go func() {
		img, stats, err := s.render(ctx, sceneObj, req.Config, webLogger)
		outcome <- renderOutcome{img, stats, err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsole(ctx, sseEventChan, msg)

		case result := <-outcome:
			// Drain messages logged before the render returned
			for len(consoleChan) > 0 {
				s.sendConsole(ctx, sseEventChan, <-consoleChan)
			}

			if result.err != nil {
				s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Render error: %v", result.err))
				return
			}
			imageData, err := imageToBase64PNG(result.img)
			if err != nil {
				s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode image: %v", err))
				return
			}
			data, _ := json.Marshal(RenderResult{
				ImageData: imageData,
				Stats:     toStats(result.stats),
				ElapsedMs: time.Since(startTime).Milliseconds(),
			})
			s.sendEvent(ctx, sseEventChan, "complete", string(data))
			return

		case <-ctx.Done():
			return
		}
	}
}

// render runs a full render into an in-memory image
func (s *Server) render(ctx context.Context, sceneObj *scene.Scene, config renderer.RenderConfig, logger core.Logger) (image.Image, renderer.RenderStats, error) {
	rt, err := renderer.NewRaytracer(sceneObj, config, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	sink := output.NewImage()
	stats, err := rt.Render(ctx, sink)
	if err != nil {
		return nil, stats, err
	}
	return sink.RGBA(), stats, nil
}

// parseRenderRequest loads the scene and applies the query parameters to its recommended config
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, *scene.Scene, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	sceneObj, err := loaders.LoadScene(req.Scene, s.scenesDir)
	if err != nil {
		return nil, nil, err
	}

	config := renderer.RenderConfigForScene(sceneObj)
	if config.Width, err = parseIntParam(values, "width", config.Width, minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if config.Height, err = parseIntParam(values, "height", config.Height, minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if sampler := values.Get("sampler"); sampler != "" {
		config.Sampler = sampler
	}
	if grid := values.Get("grid"); grid != "" {
		if config.GridX, config.GridY, err = parseGrid(grid); err != nil {
			return nil, nil, err
		}
	}
	if config.Variance, err = parseFloatParam(values, "variance", config.Variance, 1e-6, 1); err != nil {
		return nil, nil, err
	}
	if config.MaxSamples, err = parseIntParam(values, "maxSamples", config.MaxSamples, 1, 10000); err != nil {
		return nil, nil, err
	}

	req.Fidelity = values.Get("fidelity")
	fidelity, ok := core.ParseFidelity(req.Fidelity)
	if !ok {
		return nil, nil, fmt.Errorf("unknown fidelity: %s", req.Fidelity)
	}
	config.Fidelity = fidelity

	// Validate the sampler before rendering starts
	if _, err := renderer.NewEstimator(config.Sampler, config.GridX, config.GridY, config.Variance, config.MaxSamples, config.Fidelity); err != nil {
		return nil, nil, err
	}

	if config.Width*config.Height > 800*600 && config.Sampler == "adaptive" {
		log.Printf("Render warning: Large image with adaptive sampling may render slowly")
	}

	req.Width, req.Height = config.Width, config.Height
	req.Config = config
	return req, sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseGrid parses "NXxNY" with each side in [1, 16]
func parseGrid(grid string) (int, int, error) {
	parts := strings.Split(strings.ToLower(grid), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid: %s", grid)
	}
	nx, errX := strconv.Atoi(parts[0])
	ny, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil || nx < 1 || ny < 1 || nx > 16 || ny > 16 {
		return 0, 0, fmt.Errorf("invalid grid: %s", grid)
	}
	return nx, ny, nil
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		TotalSamples:   stats.TotalSamples,
		TotalRays:      stats.TotalRays,
		AverageSamples: stats.AverageSamples,
		MinSamples:     stats.MinSamples,
		MaxSamplesUsed: stats.MaxSamplesUsed,
		MaxDepth:       stats.MaxDepth,
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes all SSE events from a single goroutine until the channel closes
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for event := range sseEventChan {
		if ctx.Err() != nil {
			continue // Client disconnected, drain
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

func (s *Server) sendConsole(ctx context.Context, sseEventChan chan SSEEvent, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, "console", string(data))
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
